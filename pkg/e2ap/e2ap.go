// Package e2ap is the PER codec boundary: it turns an E2AP-PDU message tree
// into aligned PER bytes and back.
package e2ap

import (
	"github.com/pkg/errors"

	"github.com/free5gc/aper"
	"github.com/free5gc/e2ap/internal/logger"
	"github.com/free5gc/e2ap/pkg/e2apType"
	"github.com/free5gc/e2ap/pkg/ric"
)

// E2AP-PDU ::= CHOICE { initiatingMessage, successfulOutcome, unsuccessfulOutcome, ... }
const pduParams = "valueExt,valueLB:0,valueUB:2"

// Decoder decodes aligned PER bytes into an E2AP-PDU. On failure no partial
// tree is returned.
func Decoder(b []byte) (*e2apType.E2APPDU, error) {
	if len(b) == 0 {
		return nil, &ric.DecodeError{Err: errors.New("empty buffer")}
	}
	pdu := &e2apType.E2APPDU{}
	if err := aper.UnmarshalWithParams(b, pdu, pduParams); err != nil {
		logger.CodecLog.Debugf("aper decode of %d bytes failed: %+v", len(b), err)
		return nil, &ric.DecodeError{Err: err}
	}
	return pdu, nil
}

// Encoder encodes an E2AP-PDU into aligned PER bytes.
func Encoder(pdu e2apType.E2APPDU) ([]byte, error) {
	b, err := aper.MarshalWithParams(pdu, pduParams)
	if err != nil {
		logger.CodecLog.Debugf("aper encode failed: %+v", err)
		return nil, &ric.EncodeError{Field: failedField(&pdu), Err: err}
	}
	return b, nil
}

// failedField names the procedure message the codec was given, the finest
// granularity the aper error carries back.
func failedField(pdu *e2apType.E2APPDU) string {
	switch pdu.Present {
	case e2apType.E2APPDUPresentInitiatingMessage:
		if m := pdu.InitiatingMessage; m != nil {
			switch m.Value.Present {
			case e2apType.InitiatingMessagePresentRICsubscriptionRequest:
				return "RICsubscriptionRequest"
			case e2apType.InitiatingMessagePresentRICsubscriptionDeleteRequest:
				return "RICsubscriptionDeleteRequest"
			case e2apType.InitiatingMessagePresentRICindication:
				return "RICindication"
			case e2apType.InitiatingMessagePresentRICcontrolRequest:
				return "RICcontrolRequest"
			}
		}
		return "InitiatingMessage"
	case e2apType.E2APPDUPresentSuccessfulOutcome:
		if m := pdu.SuccessfulOutcome; m != nil {
			switch m.Value.Present {
			case e2apType.SuccessfulOutcomePresentRICsubscriptionResponse:
				return "RICsubscriptionResponse"
			case e2apType.SuccessfulOutcomePresentRICsubscriptionDeleteResponse:
				return "RICsubscriptionDeleteResponse"
			case e2apType.SuccessfulOutcomePresentRICcontrolAcknowledge:
				return "RICcontrolAcknowledge"
			}
		}
		return "SuccessfulOutcome"
	case e2apType.E2APPDUPresentUnsuccessfulOutcome:
		if m := pdu.UnsuccessfulOutcome; m != nil {
			switch m.Value.Present {
			case e2apType.UnsuccessfulOutcomePresentRICsubscriptionFailure:
				return "RICsubscriptionFailure"
			case e2apType.UnsuccessfulOutcomePresentRICsubscriptionDeleteFailure:
				return "RICsubscriptionDeleteFailure"
			case e2apType.UnsuccessfulOutcomePresentRICcontrolFailure:
				return "RICcontrolFailure"
			}
		}
		return "UnsuccessfulOutcome"
	}
	return "E2AP-PDU"
}
