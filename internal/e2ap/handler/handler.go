package handler

import (
	"github.com/free5gc/e2ap/internal/logger"
	"github.com/free5gc/e2ap/pkg/e2apType"
	"github.com/free5gc/e2ap/pkg/ric"
)

// HandleRICSubscriptionRequest recovers the content of a RIC Subscription
// Request, as an E2 node would.
func HandleRICSubscriptionRequest(limits ric.Limits, message *e2apType.E2APPDU) (*ric.SubscriptionRequest, error) {
	logger.E2apLog.Infoln("Handle RIC Subscription Request")

	value, err := getInitiatingMessage(message, e2apType.ProcedureCodeRICsubscription,
		e2apType.InitiatingMessagePresentRICsubscriptionRequest)
	if err != nil {
		return nil, err
	}
	subscriptionRequest := value.RICsubscriptionRequest
	if subscriptionRequest == nil {
		return nil, missingIE("RICsubscriptionRequest")
	}

	var requestID *e2apType.RICrequestID
	var ranFunctionID *e2apType.RANfunctionID
	var details *e2apType.RICsubscriptionDetails

	for _, ie := range subscriptionRequest.ProtocolIEs.List {
		switch ie.Id.Value {
		case e2apType.ProtocolIEIDRICrequestID:
			logger.E2apLog.Traceln("[E2AP] Decode IE RICrequestID")
			requestID = ie.Value.RICrequestID
		case e2apType.ProtocolIEIDRANfunctionID:
			logger.E2apLog.Traceln("[E2AP] Decode IE RANfunctionID")
			ranFunctionID = ie.Value.RANfunctionID
		case e2apType.ProtocolIEIDRICsubscriptionDetails:
			logger.E2apLog.Traceln("[E2AP] Decode IE RICsubscriptionDetails")
			details = ie.Value.RICsubscriptionDetails
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
	if details == nil {
		return nil, missingIE("RICsubscriptionDetails")
	}

	result := &ric.SubscriptionRequest{
		RequestID:     toRequestID(requestID),
		RANFunctionID: ranFunctionID.Value,
	}
	if result.EventTriggerDefinition, err = copyOctets(limits, "RICeventTriggerDefinition",
		details.RICeventTriggerDefinition.Value); err != nil {
		return nil, err
	}

	actionList := details.RICactionToBeSetupList.List
	if err := limits.CheckActions(len(actionList)); err != nil {
		return nil, err
	}
	result.Actions = make([]ric.Action, 0, len(actionList))
	for _, actionIE := range actionList {
		item := actionIE.Value.RICactionToBeSetupItem
		if actionIE.Id.Value != e2apType.ProtocolIEIDRICactionToBeSetupItem || item == nil {
			logger.E2apLog.Tracef("[E2AP] Skip RICactions-ToBeSetup-List entry with id %d", actionIE.Id.Value)
			continue
		}
		action := ric.Action{
			ActionID:   item.RICactionID.Value,
			ActionType: ric.ActionType(item.RICactionType.Value),
		}
		if item.RICactionDefinition != nil {
			if action.Definition, err = copyOctets(limits, "RICactionDefinition",
				item.RICactionDefinition.Value); err != nil {
				return nil, err
			}
		}
		if subsequent := item.RICsubsequentAction; subsequent != nil {
			action.SubsequentAction = &ric.SubsequentAction{
				Type:       ric.SubsequentActionType(subsequent.RICsubsequentActionType.Value),
				TimeToWait: int64(subsequent.RICtimeToWait.Value),
			}
		}
		result.Actions = append(result.Actions, action)
	}

	return result, nil
}

// HandleRICSubscriptionResponse extracts the request id, the RAN function
// and the admitted / not admitted action lists. The result holds copies
// only.
func HandleRICSubscriptionResponse(limits ric.Limits, message *e2apType.E2APPDU) (
	*ric.SubscriptionResponse, error,
) {
	logger.E2apLog.Infoln("Handle RIC Subscription Response")

	value, err := getSuccessfulOutcome(message, e2apType.ProcedureCodeRICsubscription,
		e2apType.SuccessfulOutcomePresentRICsubscriptionResponse)
	if err != nil {
		return nil, err
	}
	subscriptionResponse := value.RICsubscriptionResponse
	if subscriptionResponse == nil {
		return nil, missingIE("RICsubscriptionResponse")
	}

	result := new(ric.SubscriptionResponse)
	var requestIDSeen, ranFunctionIDSeen, admittedSeen bool

	for _, ie := range subscriptionResponse.ProtocolIEs.List {
		switch ie.Id.Value {
		case e2apType.ProtocolIEIDRICrequestID:
			logger.E2apLog.Traceln("[E2AP] Decode IE RICrequestID")
			if ie.Value.RICrequestID == nil {
				return nil, missingIE("RICrequestID")
			}
			result.RequestID = toRequestID(ie.Value.RICrequestID)
			requestIDSeen = true
		case e2apType.ProtocolIEIDRANfunctionID:
			logger.E2apLog.Traceln("[E2AP] Decode IE RANfunctionID")
			if ie.Value.RANfunctionID == nil {
				return nil, missingIE("RANfunctionID")
			}
			result.RANFunctionID = ie.Value.RANfunctionID.Value
			ranFunctionIDSeen = true
		case e2apType.ProtocolIEIDRICactionsAdmitted:
			logger.E2apLog.Traceln("[E2AP] Decode IE RICactions-Admitted")
			admittedList := ie.Value.RICactionsAdmitted
			if admittedList == nil {
				return nil, missingIE("RICaction-Admitted-List")
			}
			if err := limits.CheckActions(len(admittedList.List)); err != nil {
				return nil, err
			}
			result.ActionAdmittedList = make([]ric.ActionAdmitted, 0, len(admittedList.List))
			for _, item := range admittedList.List {
				admitted := item.Value.RICactionAdmittedItem
				if item.Id.Value != e2apType.ProtocolIEIDRICactionAdmittedItem || admitted == nil {
					logger.E2apLog.Tracef("[E2AP] Skip RICaction-Admitted-List entry with id %d", item.Id.Value)
					continue
				}
				result.ActionAdmittedList = append(result.ActionAdmittedList,
					ric.ActionAdmitted{ActionID: admitted.RICactionID.Value})
			}
			admittedSeen = true
		case e2apType.ProtocolIEIDRICactionsNotAdmitted:
			logger.E2apLog.Traceln("[E2AP] Decode IE RICactions-NotAdmitted")
			if result.ActionNotAdmitted, err = toActionNotAdmittedList(limits,
				ie.Value.RICactionsNotAdmitted); err != nil {
				return nil, err
			}
		default:
			logger.E2apLog.Tracef("[E2AP] Skip unknown IE %d", ie.Id.Value)
		}
	}

	if !requestIDSeen {
		return nil, missingIE("RICrequestID")
	}
	if !ranFunctionIDSeen {
		return nil, missingIE("RANfunctionID")
	}
	if !admittedSeen {
		return nil, missingIE("RICaction-Admitted-List")
	}

	logger.E2apLog.Debugf("RIC Subscription Response: %d admitted, %d not admitted",
		len(result.ActionAdmittedList), len(result.ActionNotAdmitted))
	return result, nil
}

func HandleRICSubscriptionFailure(limits ric.Limits, message *e2apType.E2APPDU) (*ric.SubscriptionFailure, error) {
	logger.E2apLog.Infoln("Handle RIC Subscription Failure")

	value, err := getUnsuccessfulOutcome(message, e2apType.ProcedureCodeRICsubscription,
		e2apType.UnsuccessfulOutcomePresentRICsubscriptionFailure)
	if err != nil {
		return nil, err
	}
	subscriptionFailure := value.RICsubscriptionFailure
	if subscriptionFailure == nil {
		return nil, missingIE("RICsubscriptionFailure")
	}

	var requestID *e2apType.RICrequestID
	var ranFunctionID *e2apType.RANfunctionID
	var notAdmittedSeen bool
	result := new(ric.SubscriptionFailure)

	for _, ie := range subscriptionFailure.ProtocolIEs.List {
		switch ie.Id.Value {
		case e2apType.ProtocolIEIDRICrequestID:
			logger.E2apLog.Traceln("[E2AP] Decode IE RICrequestID")
			requestID = ie.Value.RICrequestID
		case e2apType.ProtocolIEIDRANfunctionID:
			logger.E2apLog.Traceln("[E2AP] Decode IE RANfunctionID")
			ranFunctionID = ie.Value.RANfunctionID
		case e2apType.ProtocolIEIDRICactionsNotAdmitted:
			logger.E2apLog.Traceln("[E2AP] Decode IE RICactions-NotAdmitted")
			if result.ActionNotAdmitted, err = toActionNotAdmittedList(limits,
				ie.Value.RICactionsNotAdmitted); err != nil {
				return nil, err
			}
			notAdmittedSeen = true
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
	if !notAdmittedSeen {
		return nil, missingIE("RICaction-NotAdmitted-List")
	}
	result.RequestID = toRequestID(requestID)
	result.RANFunctionID = ranFunctionID.Value
	return result, nil
}

func HandleRICSubscriptionDeleteRequest(message *e2apType.E2APPDU) (*ric.SubscriptionDeleteRequest, error) {
	logger.E2apLog.Infoln("Handle RIC Subscription Delete Request")

	value, err := getInitiatingMessage(message, e2apType.ProcedureCodeRICsubscriptionDelete,
		e2apType.InitiatingMessagePresentRICsubscriptionDeleteRequest)
	if err != nil {
		return nil, err
	}
	deleteRequest := value.RICsubscriptionDeleteRequest
	if deleteRequest == nil {
		return nil, missingIE("RICsubscriptionDeleteRequest")
	}

	var requestID *e2apType.RICrequestID
	var ranFunctionID *e2apType.RANfunctionID
	for _, ie := range deleteRequest.ProtocolIEs.List {
		switch ie.Id.Value {
		case e2apType.ProtocolIEIDRICrequestID:
			logger.E2apLog.Traceln("[E2AP] Decode IE RICrequestID")
			requestID = ie.Value.RICrequestID
		case e2apType.ProtocolIEIDRANfunctionID:
			logger.E2apLog.Traceln("[E2AP] Decode IE RANfunctionID")
			ranFunctionID = ie.Value.RANfunctionID
		default:
			logger.E2apLog.Tracef("[E2AP] Skip unknown IE %d", ie.Id.Value)
		}
	}
	deleted, err := toSubscriptionDeleteResult(requestID, ranFunctionID)
	if err != nil {
		return nil, err
	}
	return &ric.SubscriptionDeleteRequest{
		RequestID:     deleted.RequestID,
		RANFunctionID: deleted.RANFunctionID,
	}, nil
}

func HandleRICSubscriptionDeleteResponse(message *e2apType.E2APPDU) (*ric.SubscriptionDeleteResponse, error) {
	logger.E2apLog.Infoln("Handle RIC Subscription Delete Response")

	value, err := getSuccessfulOutcome(message, e2apType.ProcedureCodeRICsubscriptionDelete,
		e2apType.SuccessfulOutcomePresentRICsubscriptionDeleteResponse)
	if err != nil {
		return nil, err
	}
	deleteResponse := value.RICsubscriptionDeleteResponse
	if deleteResponse == nil {
		return nil, missingIE("RICsubscriptionDeleteResponse")
	}

	var requestID *e2apType.RICrequestID
	var ranFunctionID *e2apType.RANfunctionID
	for _, ie := range deleteResponse.ProtocolIEs.List {
		switch ie.Id.Value {
		case e2apType.ProtocolIEIDRICrequestID:
			logger.E2apLog.Traceln("[E2AP] Decode IE RICrequestID")
			requestID = ie.Value.RICrequestID
		case e2apType.ProtocolIEIDRANfunctionID:
			logger.E2apLog.Traceln("[E2AP] Decode IE RANfunctionID")
			ranFunctionID = ie.Value.RANfunctionID
		default:
			logger.E2apLog.Tracef("[E2AP] Skip unknown IE %d", ie.Id.Value)
		}
	}
	return toSubscriptionDeleteResult(requestID, ranFunctionID)
}

func toSubscriptionDeleteResult(requestID *e2apType.RICrequestID, ranFunctionID *e2apType.RANfunctionID) (
	*ric.SubscriptionDeleteResponse, error,
) {
	if requestID == nil {
		return nil, missingIE("RICrequestID")
	}
	if ranFunctionID == nil {
		return nil, missingIE("RANfunctionID")
	}
	return &ric.SubscriptionDeleteResponse{
		RequestID:     toRequestID(requestID),
		RANFunctionID: ranFunctionID.Value,
	}, nil
}

func HandleRICSubscriptionDeleteFailure(message *e2apType.E2APPDU) (*ric.SubscriptionDeleteFailure, error) {
	logger.E2apLog.Infoln("Handle RIC Subscription Delete Failure")

	value, err := getUnsuccessfulOutcome(message, e2apType.ProcedureCodeRICsubscriptionDelete,
		e2apType.UnsuccessfulOutcomePresentRICsubscriptionDeleteFailure)
	if err != nil {
		return nil, err
	}
	deleteFailure := value.RICsubscriptionDeleteFailure
	if deleteFailure == nil {
		return nil, missingIE("RICsubscriptionDeleteFailure")
	}

	var requestID *e2apType.RICrequestID
	var ranFunctionID *e2apType.RANfunctionID
	var cause *e2apType.Cause
	for _, ie := range deleteFailure.ProtocolIEs.List {
		switch ie.Id.Value {
		case e2apType.ProtocolIEIDRICrequestID:
			logger.E2apLog.Traceln("[E2AP] Decode IE RICrequestID")
			requestID = ie.Value.RICrequestID
		case e2apType.ProtocolIEIDRANfunctionID:
			logger.E2apLog.Traceln("[E2AP] Decode IE RANfunctionID")
			ranFunctionID = ie.Value.RANfunctionID
		case e2apType.ProtocolIEIDCause:
			logger.E2apLog.Traceln("[E2AP] Decode IE Cause")
			cause = ie.Value.Cause
		default:
			logger.E2apLog.Tracef("[E2AP] Skip unknown IE %d", ie.Id.Value)
		}
	}

	deleted, err := toSubscriptionDeleteResult(requestID, ranFunctionID)
	if err != nil {
		return nil, err
	}
	result := &ric.SubscriptionDeleteFailure{
		RequestID:     deleted.RequestID,
		RANFunctionID: deleted.RANFunctionID,
	}
	if result.Cause, err = ToCause(cause); err != nil {
		return nil, err
	}
	return result, nil
}
