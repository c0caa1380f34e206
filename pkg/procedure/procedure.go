// Package procedure is the public surface for the E2AP RIC procedures:
// it encodes the messages a RIC sends and decodes the ones an E2 node
// answers with. A Procedures value is immutable and safe for concurrent use;
// calls share no state.
package procedure

import (
	"fmt"

	"github.com/free5gc/e2ap/internal/e2ap/handler"
	"github.com/free5gc/e2ap/internal/e2ap/message"
	"github.com/free5gc/e2ap/pkg/e2ap"
	"github.com/free5gc/e2ap/pkg/e2apType"
	"github.com/free5gc/e2ap/pkg/ric"
)

type Procedures struct {
	limits ric.Limits
}

var defaultProcedures = &Procedures{limits: ric.DefaultLimits()}

// New returns Procedures bound to limits. Zero fields take their defaults;
// MaxActions may not exceed maxofRICactionID.
func New(limits ric.Limits) (*Procedures, error) {
	limits = limits.Normalize()
	if limits.MaxActions > ric.DefaultMaxActions {
		return nil, fmt.Errorf("max actions %d exceeds %d", limits.MaxActions, ric.DefaultMaxActions)
	}
	return &Procedures{limits: limits}, nil
}

func Default() *Procedures {
	return defaultProcedures
}

func (p *Procedures) Limits() ric.Limits {
	return p.limits
}

func encoded(b []byte, err error) ([]byte, error) {
	if err != nil {
		return nil, err
	}
	return b, nil
}

func decode[T any](p *Procedures, b []byte,
	handle func(ric.Limits, *e2apType.E2APPDU) (*T, error),
) (*T, error) {
	pdu, err := e2ap.Decoder(b)
	if err != nil {
		return nil, err
	}
	result, err := handle(p.limits, pdu)
	if err != nil {
		return nil, err
	}
	return result, nil
}

func withoutLimits[T any](handle func(*e2apType.E2APPDU) (*T, error)) func(ric.Limits, *e2apType.E2APPDU) (*T, error) {
	return func(_ ric.Limits, pdu *e2apType.E2APPDU) (*T, error) {
		return handle(pdu)
	}
}

// EncodeSubscriptionRequest encodes a RIC Subscription Request.
func (p *Procedures) EncodeSubscriptionRequest(requestID ric.RequestID, ranFunctionID int64,
	eventTrigger []byte, actions []ric.Action,
) ([]byte, error) {
	b, err := message.BuildRICSubscriptionRequest(p.limits, &ric.SubscriptionRequest{
		RequestID:              requestID,
		RANFunctionID:          ranFunctionID,
		EventTriggerDefinition: eventTrigger,
		Actions:                actions,
	})
	return encoded(b, err)
}

// DecodeSubscriptionResponse decodes a RIC Subscription Response. Any other
// well formed message yields ric.ErrProcedureMismatch and no result.
func (p *Procedures) DecodeSubscriptionResponse(b []byte) (*ric.SubscriptionResponse, error) {
	return decode(p, b, handler.HandleRICSubscriptionResponse)
}

// DecodeIndication decodes a RIC Indication. The result owns its buffers;
// pass it to ReleaseIndication once done.
func (p *Procedures) DecodeIndication(b []byte) (*ric.Indication, error) {
	return decode(p, b, handler.HandleRICIndication)
}

// EncodeControlRequest encodes a RIC Control Request. A nil callProcessID
// omits that IE; ackRequest == ric.ControlAckRequestOmit omits
// RICcontrolAckRequest.
func (p *Procedures) EncodeControlRequest(requestID ric.RequestID, ranFunctionID int64,
	callProcessID, header, controlMessage []byte, ackRequest int64,
) ([]byte, error) {
	b, err := message.BuildRICControlRequest(p.limits, &ric.ControlRequest{
		RequestID:     requestID,
		RANFunctionID: ranFunctionID,
		CallProcessID: callProcessID,
		Header:        header,
		Message:       controlMessage,
		AckRequest:    ackRequest,
	})
	return encoded(b, err)
}

func (p *Procedures) EncodeSubscriptionDeleteRequest(requestID ric.RequestID, ranFunctionID int64) ([]byte, error) {
	b, err := message.BuildRICSubscriptionDeleteRequest(requestID, ranFunctionID)
	return encoded(b, err)
}

func (p *Procedures) DecodeSubscriptionFailure(b []byte) (*ric.SubscriptionFailure, error) {
	return decode(p, b, handler.HandleRICSubscriptionFailure)
}

func (p *Procedures) DecodeSubscriptionDeleteResponse(b []byte) (*ric.SubscriptionDeleteResponse, error) {
	return decode(p, b,
		withoutLimits(handler.HandleRICSubscriptionDeleteResponse))
}

func (p *Procedures) DecodeSubscriptionDeleteFailure(b []byte) (*ric.SubscriptionDeleteFailure, error) {
	return decode(p, b,
		withoutLimits(handler.HandleRICSubscriptionDeleteFailure))
}

func (p *Procedures) DecodeControlAcknowledge(b []byte) (*ric.ControlAcknowledge, error) {
	return decode(p, b, handler.HandleRICControlAcknowledge)
}

func (p *Procedures) DecodeControlFailure(b []byte) (*ric.ControlFailure, error) {
	return decode(p, b, handler.HandleRICControlFailure)
}

// Package level operations on the default limits.

func EncodeSubscriptionRequest(requestID ric.RequestID, ranFunctionID int64,
	eventTrigger []byte, actions []ric.Action,
) ([]byte, error) {
	return defaultProcedures.EncodeSubscriptionRequest(requestID, ranFunctionID, eventTrigger, actions)
}

func DecodeSubscriptionResponse(b []byte) (*ric.SubscriptionResponse, error) {
	return defaultProcedures.DecodeSubscriptionResponse(b)
}

func DecodeIndication(b []byte) (*ric.Indication, error) {
	return defaultProcedures.DecodeIndication(b)
}

// ReleaseIndication drops the buffers of ind. It is a no-op on nil or on
// an Indication already released.
func ReleaseIndication(ind *ric.Indication) {
	ind.Release()
}

func EncodeControlRequest(requestID ric.RequestID, ranFunctionID int64,
	callProcessID, header, controlMessage []byte, ackRequest int64,
) ([]byte, error) {
	return defaultProcedures.EncodeControlRequest(requestID, ranFunctionID,
		callProcessID, header, controlMessage, ackRequest)
}

func EncodeSubscriptionDeleteRequest(requestID ric.RequestID, ranFunctionID int64) ([]byte, error) {
	return defaultProcedures.EncodeSubscriptionDeleteRequest(requestID, ranFunctionID)
}

func DecodeSubscriptionFailure(b []byte) (*ric.SubscriptionFailure, error) {
	return defaultProcedures.DecodeSubscriptionFailure(b)
}

func DecodeSubscriptionDeleteResponse(b []byte) (*ric.SubscriptionDeleteResponse, error) {
	return defaultProcedures.DecodeSubscriptionDeleteResponse(b)
}

func DecodeSubscriptionDeleteFailure(b []byte) (*ric.SubscriptionDeleteFailure, error) {
	return defaultProcedures.DecodeSubscriptionDeleteFailure(b)
}

func DecodeControlAcknowledge(b []byte) (*ric.ControlAcknowledge, error) {
	return defaultProcedures.DecodeControlAcknowledge(b)
}

func DecodeControlFailure(b []byte) (*ric.ControlFailure, error) {
	return defaultProcedures.DecodeControlFailure(b)
}
