package e2ap

import (
	"fmt"
	"runtime/debug"

	"github.com/free5gc/e2ap/internal/e2ap/handler"
	"github.com/free5gc/e2ap/internal/logger"
	e2ap_codec "github.com/free5gc/e2ap/pkg/e2ap"
	"github.com/free5gc/e2ap/pkg/e2apType"
	"github.com/free5gc/e2ap/pkg/ric"
)

// Dispatch decodes msg and hands the tree to the extractor matching its
// envelope and procedure code.
func Dispatch(limits ric.Limits, msg []byte) (message *ric.Message, err error) {
	defer func() {
		if p := recover(); p != nil {
			logger.E2apLog.Errorf("panic: %v\n%s", p, string(debug.Stack()))
			message, err = nil, fmt.Errorf("dispatch E2AP message: %v", p)
		}
	}()

	pdu, err := e2ap_codec.Decoder(msg)
	if err != nil {
		logger.E2apLog.Errorf("E2AP decode error: %+v", err)
		return nil, err
	}

	switch pdu.Present {
	case e2apType.E2APPDUPresentInitiatingMessage:
		initiatingMessage := pdu.InitiatingMessage
		if initiatingMessage == nil {
			logger.E2apLog.Errorln("Initiating Message is nil")
			return nil, fmt.Errorf("%w: initiating message is nil", ric.ErrProcedureMismatch)
		}

		code := initiatingMessage.ProcedureCode.Value
		switch code {
		case e2apType.ProcedureCodeRICsubscription:
			record, err := handler.HandleRICSubscriptionRequest(limits, pdu)
			return newMessage("RICsubscriptionRequest", code, record, err)
		case e2apType.ProcedureCodeRICsubscriptionDelete:
			record, err := handler.HandleRICSubscriptionDeleteRequest(pdu)
			return newMessage("RICsubscriptionDeleteRequest", code, record, err)
		case e2apType.ProcedureCodeRICindication:
			record, err := handler.HandleRICIndication(limits, pdu)
			return newMessage("RICindication", code, record, err)
		case e2apType.ProcedureCodeRICcontrol:
			record, err := handler.HandleRICControlRequest(limits, pdu)
			return newMessage("RICcontrolRequest", code, record, err)
		default:
			logger.E2apLog.Warnf("Not implemented E2AP message(initiatingMessage), procedureCode:%d", code)
		}
	case e2apType.E2APPDUPresentSuccessfulOutcome:
		successfulOutcome := pdu.SuccessfulOutcome
		if successfulOutcome == nil {
			logger.E2apLog.Errorln("Successful Outcome is nil")
			return nil, fmt.Errorf("%w: successful outcome is nil", ric.ErrProcedureMismatch)
		}

		code := successfulOutcome.ProcedureCode.Value
		switch code {
		case e2apType.ProcedureCodeRICsubscription:
			record, err := handler.HandleRICSubscriptionResponse(limits, pdu)
			return newMessage("RICsubscriptionResponse", code, record, err)
		case e2apType.ProcedureCodeRICsubscriptionDelete:
			record, err := handler.HandleRICSubscriptionDeleteResponse(pdu)
			return newMessage("RICsubscriptionDeleteResponse", code, record, err)
		case e2apType.ProcedureCodeRICcontrol:
			record, err := handler.HandleRICControlAcknowledge(limits, pdu)
			return newMessage("RICcontrolAcknowledge", code, record, err)
		default:
			logger.E2apLog.Warnf("Not implemented E2AP message(successfulOutcome), procedureCode:%d", code)
		}
	case e2apType.E2APPDUPresentUnsuccessfulOutcome:
		unsuccessfulOutcome := pdu.UnsuccessfulOutcome
		if unsuccessfulOutcome == nil {
			logger.E2apLog.Errorln("Unsuccessful Outcome is nil")
			return nil, fmt.Errorf("%w: unsuccessful outcome is nil", ric.ErrProcedureMismatch)
		}

		code := unsuccessfulOutcome.ProcedureCode.Value
		switch code {
		case e2apType.ProcedureCodeRICsubscription:
			record, err := handler.HandleRICSubscriptionFailure(limits, pdu)
			return newMessage("RICsubscriptionFailure", code, record, err)
		case e2apType.ProcedureCodeRICsubscriptionDelete:
			record, err := handler.HandleRICSubscriptionDeleteFailure(pdu)
			return newMessage("RICsubscriptionDeleteFailure", code, record, err)
		case e2apType.ProcedureCodeRICcontrol:
			record, err := handler.HandleRICControlFailure(limits, pdu)
			return newMessage("RICcontrolFailure", code, record, err)
		default:
			logger.E2apLog.Warnf("Not implemented E2AP message(unsuccessfulOutcome), procedureCode:%d", code)
		}
	}
	return nil, fmt.Errorf("%w: unsupported E2AP message", ric.ErrProcedureMismatch)
}

func newMessage[T any](name string, code int64, record *T, err error) (*ric.Message, error) {
	if err != nil {
		return nil, err
	}
	return &ric.Message{Name: name, ProcedureCode: code, Record: record}, nil
}
