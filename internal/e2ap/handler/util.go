package handler

import (
	"fmt"

	"github.com/free5gc/e2ap/internal/logger"
	"github.com/free5gc/e2ap/pkg/e2apType"
	"github.com/free5gc/e2ap/pkg/ric"
)

func getInitiatingMessage(pdu *e2apType.E2APPDU, procedureCode int64, present int) (
	*e2apType.InitiatingMessageValue, error,
) {
	if pdu == nil {
		logger.E2apLog.Error("E2AP Message is nil")
		return nil, fmt.Errorf("%w: nil E2AP-PDU", ric.ErrProcedureMismatch)
	}
	if pdu.Present != e2apType.E2APPDUPresentInitiatingMessage || pdu.InitiatingMessage == nil {
		logger.E2apLog.Tracef("Not an Initiating Message (present %d)", pdu.Present)
		return nil, fmt.Errorf("%w: envelope %d is not initiatingMessage", ric.ErrProcedureMismatch, pdu.Present)
	}
	initiatingMessage := pdu.InitiatingMessage
	if initiatingMessage.ProcedureCode.Value != procedureCode || initiatingMessage.Value.Present != present {
		logger.E2apLog.Tracef("Initiating Message procedure code %d, want %d",
			initiatingMessage.ProcedureCode.Value, procedureCode)
		return nil, fmt.Errorf("%w: procedure code %d", ric.ErrProcedureMismatch,
			initiatingMessage.ProcedureCode.Value)
	}
	return &initiatingMessage.Value, nil
}

func getSuccessfulOutcome(pdu *e2apType.E2APPDU, procedureCode int64, present int) (
	*e2apType.SuccessfulOutcomeValue, error,
) {
	if pdu == nil {
		logger.E2apLog.Error("E2AP Message is nil")
		return nil, fmt.Errorf("%w: nil E2AP-PDU", ric.ErrProcedureMismatch)
	}
	if pdu.Present != e2apType.E2APPDUPresentSuccessfulOutcome || pdu.SuccessfulOutcome == nil {
		logger.E2apLog.Tracef("Not a Successful Outcome (present %d)", pdu.Present)
		return nil, fmt.Errorf("%w: envelope %d is not successfulOutcome", ric.ErrProcedureMismatch, pdu.Present)
	}
	successfulOutcome := pdu.SuccessfulOutcome
	if successfulOutcome.ProcedureCode.Value != procedureCode || successfulOutcome.Value.Present != present {
		logger.E2apLog.Tracef("Successful Outcome procedure code %d, want %d",
			successfulOutcome.ProcedureCode.Value, procedureCode)
		return nil, fmt.Errorf("%w: procedure code %d", ric.ErrProcedureMismatch,
			successfulOutcome.ProcedureCode.Value)
	}
	return &successfulOutcome.Value, nil
}

func getUnsuccessfulOutcome(pdu *e2apType.E2APPDU, procedureCode int64, present int) (
	*e2apType.UnsuccessfulOutcomeValue, error,
) {
	if pdu == nil {
		logger.E2apLog.Error("E2AP Message is nil")
		return nil, fmt.Errorf("%w: nil E2AP-PDU", ric.ErrProcedureMismatch)
	}
	if pdu.Present != e2apType.E2APPDUPresentUnsuccessfulOutcome || pdu.UnsuccessfulOutcome == nil {
		logger.E2apLog.Tracef("Not an Unsuccessful Outcome (present %d)", pdu.Present)
		return nil, fmt.Errorf("%w: envelope %d is not unsuccessfulOutcome", ric.ErrProcedureMismatch, pdu.Present)
	}
	unsuccessfulOutcome := pdu.UnsuccessfulOutcome
	if unsuccessfulOutcome.ProcedureCode.Value != procedureCode || unsuccessfulOutcome.Value.Present != present {
		logger.E2apLog.Tracef("Unsuccessful Outcome procedure code %d, want %d",
			unsuccessfulOutcome.ProcedureCode.Value, procedureCode)
		return nil, fmt.Errorf("%w: procedure code %d", ric.ErrProcedureMismatch,
			unsuccessfulOutcome.ProcedureCode.Value)
	}
	return &unsuccessfulOutcome.Value, nil
}

func missingIE(name string) error {
	logger.E2apLog.Errorf("%s is nil", name)
	return fmt.Errorf("%w: %s", ric.ErrMissingIE, name)
}

func toRequestID(requestID *e2apType.RICrequestID) ric.RequestID {
	return ric.RequestID{
		RequestorID: requestID.RICrequestorID,
		InstanceID:  requestID.RICinstanceID,
	}
}

// ToCause maps the Cause CHOICE onto its category and integer code.
func ToCause(cause *e2apType.Cause) (ric.Cause, error) {
	if cause == nil {
		return ric.Cause{}, missingIE("Cause")
	}
	switch cause.Present {
	case e2apType.CausePresentRicRequest:
		if cause.RicRequest != nil {
			return ric.Cause{Type: ric.CauseTypeRICRequest, ID: int64(cause.RicRequest.Value)}, nil
		}
	case e2apType.CausePresentRicService:
		if cause.RicService != nil {
			return ric.Cause{Type: ric.CauseTypeRICService, ID: int64(cause.RicService.Value)}, nil
		}
	case e2apType.CausePresentTransport:
		if cause.Transport != nil {
			return ric.Cause{Type: ric.CauseTypeTransport, ID: int64(cause.Transport.Value)}, nil
		}
	case e2apType.CausePresentProtocol:
		if cause.Protocol != nil {
			return ric.Cause{Type: ric.CauseTypeProtocol, ID: int64(cause.Protocol.Value)}, nil
		}
	case e2apType.CausePresentMisc:
		if cause.Misc != nil {
			return ric.Cause{Type: ric.CauseTypeMisc, ID: int64(cause.Misc.Value)}, nil
		}
	default:
		logger.E2apLog.Warnf("Unknown Cause present %d", cause.Present)
		return ric.Cause{}, fmt.Errorf("unknown cause present %d", cause.Present)
	}
	return ric.Cause{}, missingIE(ric.CauseType(cause.Present).String())
}

func toActionNotAdmittedList(limits ric.Limits, list *e2apType.RICactionNotAdmittedList) (
	[]ric.ActionNotAdmitted, error,
) {
	if list == nil {
		return nil, missingIE("RICaction-NotAdmitted-List")
	}
	if err := limits.CheckActions(len(list.List)); err != nil {
		return nil, err
	}
	notAdmitted := make([]ric.ActionNotAdmitted, 0, len(list.List))
	for _, item := range list.List {
		notAdmittedItem := item.Value.RICactionNotAdmittedItem
		if item.Id.Value != e2apType.ProtocolIEIDRICactionNotAdmittedItem || notAdmittedItem == nil {
			logger.E2apLog.Tracef("Skip RICaction-NotAdmitted-List entry with id %d", item.Id.Value)
			continue
		}
		cause, err := ToCause(&notAdmittedItem.Cause)
		if err != nil {
			return nil, err
		}
		notAdmitted = append(notAdmitted, ric.ActionNotAdmitted{
			ActionID: notAdmittedItem.RICactionID.Value,
			Cause:    cause,
		})
	}
	return notAdmitted, nil
}

func copyOctets(limits ric.Limits, name string, b []byte) ([]byte, error) {
	buf, err := limits.CopyOctets(name, b)
	if err != nil {
		logger.E2apLog.Errorf("Copy %s failed: %+v", name, err)
		return nil, err
	}
	if buf == nil {
		buf = []byte{}
	}
	return buf, nil
}
