package handler

import (
	"github.com/free5gc/e2ap/internal/logger"
	"github.com/free5gc/e2ap/pkg/e2apType"
	"github.com/free5gc/e2ap/pkg/ric"
)

// HandleRICControlRequest recovers a RIC Control Request. An absent
// RICcontrolAckRequest is reported as ric.ControlAckRequestOmit; the header
// and message IEs are mandatory.
func HandleRICControlRequest(limits ric.Limits, message *e2apType.E2APPDU) (*ric.ControlRequest, error) {
	logger.E2apLog.Infoln("Handle RIC Control Request")

	value, err := getInitiatingMessage(message, e2apType.ProcedureCodeRICcontrol,
		e2apType.InitiatingMessagePresentRICcontrolRequest)
	if err != nil {
		return nil, err
	}
	controlRequest := value.RICcontrolRequest
	if controlRequest == nil {
		return nil, missingIE("RICcontrolRequest")
	}

	result := &ric.ControlRequest{AckRequest: ric.ControlAckRequestOmit}
	var requestID *e2apType.RICrequestID
	var ranFunctionID *e2apType.RANfunctionID
	var header *e2apType.RICcontrolHeader
	var controlMessage *e2apType.RICcontrolMessage

	for _, ie := range controlRequest.ProtocolIEs.List {
		switch ie.Id.Value {
		case e2apType.ProtocolIEIDRICrequestID:
			logger.E2apLog.Traceln("[E2AP] Decode IE RICrequestID")
			requestID = ie.Value.RICrequestID
		case e2apType.ProtocolIEIDRANfunctionID:
			logger.E2apLog.Traceln("[E2AP] Decode IE RANfunctionID")
			ranFunctionID = ie.Value.RANfunctionID
		case e2apType.ProtocolIEIDRICcallProcessID:
			logger.E2apLog.Traceln("[E2AP] Decode IE RICcallProcessID")
			if ie.Value.RICcallProcessID != nil {
				if result.CallProcessID, err = copyOctets(limits, "RICcallProcessID",
					ie.Value.RICcallProcessID.Value); err != nil {
					return nil, err
				}
			}
		case e2apType.ProtocolIEIDRICcontrolHeader:
			logger.E2apLog.Traceln("[E2AP] Decode IE RICcontrolHeader")
			header = ie.Value.RICcontrolHeader
		case e2apType.ProtocolIEIDRICcontrolMessage:
			logger.E2apLog.Traceln("[E2AP] Decode IE RICcontrolMessage")
			controlMessage = ie.Value.RICcontrolMessage
		case e2apType.ProtocolIEIDRICcontrolAckRequest:
			logger.E2apLog.Traceln("[E2AP] Decode IE RICcontrolAckRequest")
			if ie.Value.RICcontrolAckRequest != nil {
				result.AckRequest = int64(ie.Value.RICcontrolAckRequest.Value)
			}
		default:
			logger.E2apLog.Tracef("[E2AP] Skip unknown IE %d", ie.Id.Value)
		}
	}

	if requestID == nil {
		return nil, missingIE("RICrequestID")
	}
	if ranFunctionID == nil {
		return nil, missingIE("RANfunctionID")
	}
	if header == nil {
		return nil, missingIE("RICcontrolHeader")
	}
	if controlMessage == nil {
		return nil, missingIE("RICcontrolMessage")
	}
	result.RequestID = toRequestID(requestID)
	result.RANFunctionID = ranFunctionID.Value
	if result.Header, err = copyOctets(limits, "RICcontrolHeader", header.Value); err != nil {
		return nil, err
	}
	if result.Message, err = copyOctets(limits, "RICcontrolMessage", controlMessage.Value); err != nil {
		return nil, err
	}
	return result, nil
}

func HandleRICControlAcknowledge(limits ric.Limits, message *e2apType.E2APPDU) (*ric.ControlAcknowledge, error) {
	logger.E2apLog.Infoln("Handle RIC Control Acknowledge")

	value, err := getSuccessfulOutcome(message, e2apType.ProcedureCodeRICcontrol,
		e2apType.SuccessfulOutcomePresentRICcontrolAcknowledge)
	if err != nil {
		return nil, err
	}
	controlAcknowledge := value.RICcontrolAcknowledge
	if controlAcknowledge == nil {
		return nil, missingIE("RICcontrolAcknowledge")
	}

	result := new(ric.ControlAcknowledge)
	var requestID *e2apType.RICrequestID
	var ranFunctionID *e2apType.RANfunctionID
	var status *e2apType.RICcontrolStatus

	for _, ie := range controlAcknowledge.ProtocolIEs.List {
		switch ie.Id.Value {
		case e2apType.ProtocolIEIDRICrequestID:
			logger.E2apLog.Traceln("[E2AP] Decode IE RICrequestID")
			requestID = ie.Value.RICrequestID
		case e2apType.ProtocolIEIDRANfunctionID:
			logger.E2apLog.Traceln("[E2AP] Decode IE RANfunctionID")
			ranFunctionID = ie.Value.RANfunctionID
		case e2apType.ProtocolIEIDRICcallProcessID:
			logger.E2apLog.Traceln("[E2AP] Decode IE RICcallProcessID")
			if ie.Value.RICcallProcessID != nil {
				if result.CallProcessID, err = copyOctets(limits, "RICcallProcessID",
					ie.Value.RICcallProcessID.Value); err != nil {
					return nil, err
				}
			}
		case e2apType.ProtocolIEIDRICcontrolStatus:
			logger.E2apLog.Traceln("[E2AP] Decode IE RICcontrolStatus")
			status = ie.Value.RICcontrolStatus
		case e2apType.ProtocolIEIDRICcontrolOutcome:
			logger.E2apLog.Traceln("[E2AP] Decode IE RICcontrolOutcome")
			if ie.Value.RICcontrolOutcome != nil {
				if result.Outcome, err = copyOctets(limits, "RICcontrolOutcome",
					ie.Value.RICcontrolOutcome.Value); err != nil {
					return nil, err
				}
			}
		default:
			logger.E2apLog.Tracef("[E2AP] Skip unknown IE %d", ie.Id.Value)
		}
	}

	if requestID == nil {
		return nil, missingIE("RICrequestID")
	}
	if ranFunctionID == nil {
		return nil, missingIE("RANfunctionID")
	}
	if status == nil {
		return nil, missingIE("RICcontrolStatus")
	}
	result.RequestID = toRequestID(requestID)
	result.RANFunctionID = ranFunctionID.Value
	result.Status = ric.ControlStatus(status.Value)
	return result, nil
}

func HandleRICControlFailure(limits ric.Limits, message *e2apType.E2APPDU) (*ric.ControlFailure, error) {
	logger.E2apLog.Infoln("Handle RIC Control Failure")

	value, err := getUnsuccessfulOutcome(message, e2apType.ProcedureCodeRICcontrol,
		e2apType.UnsuccessfulOutcomePresentRICcontrolFailure)
	if err != nil {
		return nil, err
	}
	controlFailure := value.RICcontrolFailure
	if controlFailure == nil {
		return nil, missingIE("RICcontrolFailure")
	}

	result := new(ric.ControlFailure)
	var requestID *e2apType.RICrequestID
	var ranFunctionID *e2apType.RANfunctionID
	var cause *e2apType.Cause

	for _, ie := range controlFailure.ProtocolIEs.List {
		switch ie.Id.Value {
		case e2apType.ProtocolIEIDRICrequestID:
			logger.E2apLog.Traceln("[E2AP] Decode IE RICrequestID")
			requestID = ie.Value.RICrequestID
		case e2apType.ProtocolIEIDRANfunctionID:
			logger.E2apLog.Traceln("[E2AP] Decode IE RANfunctionID")
			ranFunctionID = ie.Value.RANfunctionID
		case e2apType.ProtocolIEIDRICcallProcessID:
			logger.E2apLog.Traceln("[E2AP] Decode IE RICcallProcessID")
			if ie.Value.RICcallProcessID != nil {
				if result.CallProcessID, err = copyOctets(limits, "RICcallProcessID",
					ie.Value.RICcallProcessID.Value); err != nil {
					return nil, err
				}
			}
		case e2apType.ProtocolIEIDCause:
			logger.E2apLog.Traceln("[E2AP] Decode IE Cause")
			cause = ie.Value.Cause
		case e2apType.ProtocolIEIDRICcontrolOutcome:
			logger.E2apLog.Traceln("[E2AP] Decode IE RICcontrolOutcome")
			if ie.Value.RICcontrolOutcome != nil {
				if result.Outcome, err = copyOctets(limits, "RICcontrolOutcome",
					ie.Value.RICcontrolOutcome.Value); err != nil {
					return nil, err
				}
			}
		default:
			logger.E2apLog.Tracef("[E2AP] Skip unknown IE %d", ie.Id.Value)
		}
	}

	if requestID == nil {
		return nil, missingIE("RICrequestID")
	}
	if ranFunctionID == nil {
		return nil, missingIE("RANfunctionID")
	}
	result.RequestID = toRequestID(requestID)
	result.RANFunctionID = ranFunctionID.Value
	if result.Cause, err = ToCause(cause); err != nil {
		return nil, err
	}
	return result, nil
}
