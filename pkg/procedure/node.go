package procedure

import (
	"github.com/free5gc/e2ap/internal/e2ap"
	"github.com/free5gc/e2ap/internal/e2ap/handler"
	"github.com/free5gc/e2ap/internal/e2ap/message"
	"github.com/free5gc/e2ap/pkg/ric"
)

// E2 node side: decode what a RIC sends, encode the answers.

func (p *Procedures) DecodeSubscriptionRequest(b []byte) (*ric.SubscriptionRequest, error) {
	return decode(p, b, handler.HandleRICSubscriptionRequest)
}

func (p *Procedures) DecodeSubscriptionDeleteRequest(b []byte) (*ric.SubscriptionDeleteRequest, error) {
	return decode(p, b,
		withoutLimits(handler.HandleRICSubscriptionDeleteRequest))
}

func (p *Procedures) DecodeControlRequest(b []byte) (*ric.ControlRequest, error) {
	return decode(p, b, handler.HandleRICControlRequest)
}

func (p *Procedures) EncodeSubscriptionResponse(resp *ric.SubscriptionResponse) ([]byte, error) {
	b, err := message.BuildRICSubscriptionResponse(p.limits, resp)
	return encoded(b, err)
}

func (p *Procedures) EncodeSubscriptionFailure(failure *ric.SubscriptionFailure) ([]byte, error) {
	b, err := message.BuildRICSubscriptionFailure(p.limits, failure)
	return encoded(b, err)
}

func (p *Procedures) EncodeSubscriptionDeleteResponse(requestID ric.RequestID, ranFunctionID int64) (
	[]byte, error,
) {
	b, err := message.BuildRICSubscriptionDeleteResponse(requestID, ranFunctionID)
	return encoded(b, err)
}

func (p *Procedures) EncodeSubscriptionDeleteFailure(failure *ric.SubscriptionDeleteFailure) ([]byte, error) {
	b, err := message.BuildRICSubscriptionDeleteFailure(failure)
	return encoded(b, err)
}

func (p *Procedures) EncodeIndication(ind *ric.Indication) ([]byte, error) {
	b, err := message.BuildRICIndication(p.limits, ind)
	return encoded(b, err)
}

func (p *Procedures) EncodeControlAcknowledge(ack *ric.ControlAcknowledge) ([]byte, error) {
	b, err := message.BuildRICControlAcknowledge(p.limits, ack)
	return encoded(b, err)
}

func (p *Procedures) EncodeControlFailure(failure *ric.ControlFailure) ([]byte, error) {
	b, err := message.BuildRICControlFailure(p.limits, failure)
	return encoded(b, err)
}

// Decode identifies any supported E2AP message and returns its record.
func (p *Procedures) Decode(b []byte) (*ric.Message, error) {
	return e2ap.Dispatch(p.limits, b)
}

func Decode(b []byte) (*ric.Message, error) {
	return defaultProcedures.Decode(b)
}
