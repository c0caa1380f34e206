package message

import (
	"fmt"

	"github.com/free5gc/aper"
	"github.com/free5gc/e2ap/internal/logger"
	"github.com/free5gc/e2ap/pkg/e2ap"
	"github.com/free5gc/e2ap/pkg/e2apType"
	"github.com/free5gc/e2ap/pkg/ric"
)

func BuildRICSubscriptionRequest(limits ric.Limits, req *ric.SubscriptionRequest) ([]byte, error) {
	pdu, err := BuildRICSubscriptionRequestPDU(limits, req)
	if err != nil {
		return nil, err
	}
	return e2ap.Encoder(*pdu)
}

// BuildRICSubscriptionRequestPDU assembles RICrequestID, RANfunctionID and
// RICsubscriptionDetails, in that order, all with criticality reject.
func BuildRICSubscriptionRequestPDU(limits ric.Limits, req *ric.SubscriptionRequest) (*e2apType.E2APPDU, error) {
	if req == nil {
		return nil, fmt.Errorf("subscription request is nil")
	}
	if err := limits.CheckActions(len(req.Actions)); err != nil {
		return nil, err
	}

	var pdu e2apType.E2APPDU
	pdu.Present = e2apType.E2APPDUPresentInitiatingMessage
	pdu.InitiatingMessage = new(e2apType.InitiatingMessage)

	initiatingMessage := pdu.InitiatingMessage
	initiatingMessage.ProcedureCode.Value = e2apType.ProcedureCodeRICsubscription
	initiatingMessage.Criticality.Value = e2apType.CriticalityPresentReject
	initiatingMessage.Value.Present = e2apType.InitiatingMessagePresentRICsubscriptionRequest
	initiatingMessage.Value.RICsubscriptionRequest = new(e2apType.RICsubscriptionRequest)

	subscriptionRequestIEs := &initiatingMessage.Value.RICsubscriptionRequest.ProtocolIEs

	// RICrequestID
	requestID, err := buildRICrequestID(req.RequestID)
	if err != nil {
		return nil, err
	}
	ie := e2apType.RICsubscriptionRequestIEs{}
	ie.Id.Value = e2apType.ProtocolIEIDRICrequestID
	ie.Criticality.Value = e2apType.CriticalityPresentReject
	ie.Value.Present = e2apType.RICsubscriptionRequestIEsPresentRICrequestID
	ie.Value.RICrequestID = requestID
	subscriptionRequestIEs.List = append(subscriptionRequestIEs.List, ie)

	// RANfunctionID
	ranFunctionID, err := buildRANfunctionID(req.RANFunctionID)
	if err != nil {
		return nil, err
	}
	ie = e2apType.RICsubscriptionRequestIEs{}
	ie.Id.Value = e2apType.ProtocolIEIDRANfunctionID
	ie.Criticality.Value = e2apType.CriticalityPresentReject
	ie.Value.Present = e2apType.RICsubscriptionRequestIEsPresentRANfunctionID
	ie.Value.RANfunctionID = ranFunctionID
	subscriptionRequestIEs.List = append(subscriptionRequestIEs.List, ie)

	// RICsubscriptionDetails
	ie = e2apType.RICsubscriptionRequestIEs{}
	ie.Id.Value = e2apType.ProtocolIEIDRICsubscriptionDetails
	ie.Criticality.Value = e2apType.CriticalityPresentReject
	ie.Value.Present = e2apType.RICsubscriptionRequestIEsPresentRICsubscriptionDetails
	ie.Value.RICsubscriptionDetails = new(e2apType.RICsubscriptionDetails)

	details := ie.Value.RICsubscriptionDetails
	eventTrigger, err := limits.CopyOctets("RICeventTriggerDefinition", req.EventTriggerDefinition)
	if err != nil {
		return nil, err
	}
	if eventTrigger == nil {
		eventTrigger = []byte{}
	}
	details.RICeventTriggerDefinition.Value = aper.OctetString(eventTrigger)

	actionList := &details.RICactionToBeSetupList
	actionList.List = make([]e2apType.RICactionToBeSetupItemIEs, 0, len(req.Actions))
	for i := range req.Actions {
		item, err := buildRICactionToBeSetupItem(limits, &req.Actions[i])
		if err != nil {
			return nil, err
		}
		actionIE := e2apType.RICactionToBeSetupItemIEs{}
		actionIE.Id.Value = e2apType.ProtocolIEIDRICactionToBeSetupItem
		actionIE.Criticality.Value = e2apType.CriticalityPresentReject
		actionIE.Value.Present = e2apType.RICactionToBeSetupItemIEsPresentRICactionToBeSetupItem
		actionIE.Value.RICactionToBeSetupItem = item
		actionList.List = append(actionList.List, actionIE)
	}
	subscriptionRequestIEs.List = append(subscriptionRequestIEs.List, ie)

	logger.E2apLog.Tracef("RIC Subscription Request built with %d action(s)", len(actionList.List))
	return &pdu, nil
}

func buildRICactionToBeSetupItem(limits ric.Limits, action *ric.Action) (*e2apType.RICactionToBeSetupItem, error) {
	if err := checkRange("RICaction-ToBeSetup-Item.ricActionID", action.ActionID, 0, 255); err != nil {
		return nil, err
	}
	if err := checkRange("RICaction-ToBeSetup-Item.ricActionType", int64(action.ActionType), 0, 2); err != nil {
		return nil, err
	}

	item := new(e2apType.RICactionToBeSetupItem)
	item.RICactionID.Value = action.ActionID
	item.RICactionType.Value = aper.Enumerated(action.ActionType)

	if len(action.Definition) != 0 {
		definition, err := limits.CopyOctets("RICactionDefinition", action.Definition)
		if err != nil {
			return nil, err
		}
		item.RICactionDefinition = &e2apType.RICactionDefinition{Value: definition}
	}

	if subsequent := action.SubsequentAction; subsequent != nil {
		if err := checkRange("RICsubsequentAction.ricSubsequentActionType",
			int64(subsequent.Type), 0, 1); err != nil {
			return nil, err
		}
		if err := checkRange("RICsubsequentAction.ricTimeToWait", subsequent.TimeToWait, 0, 17); err != nil {
			return nil, err
		}
		item.RICsubsequentAction = new(e2apType.RICsubsequentAction)
		item.RICsubsequentAction.RICsubsequentActionType.Value = aper.Enumerated(subsequent.Type)
		item.RICsubsequentAction.RICtimeToWait.Value = aper.Enumerated(subsequent.TimeToWait)
	}
	return item, nil
}

func BuildRICSubscriptionDeleteRequest(requestID ric.RequestID, ranFunctionID int64) ([]byte, error) {
	var pdu e2apType.E2APPDU
	pdu.Present = e2apType.E2APPDUPresentInitiatingMessage
	pdu.InitiatingMessage = new(e2apType.InitiatingMessage)

	initiatingMessage := pdu.InitiatingMessage
	initiatingMessage.ProcedureCode.Value = e2apType.ProcedureCodeRICsubscriptionDelete
	initiatingMessage.Criticality.Value = e2apType.CriticalityPresentReject
	initiatingMessage.Value.Present = e2apType.InitiatingMessagePresentRICsubscriptionDeleteRequest
	initiatingMessage.Value.RICsubscriptionDeleteRequest = new(e2apType.RICsubscriptionDeleteRequest)

	deleteRequestIEs := &initiatingMessage.Value.RICsubscriptionDeleteRequest.ProtocolIEs

	// RICrequestID
	ricRequestID, err := buildRICrequestID(requestID)
	if err != nil {
		return nil, err
	}
	ie := e2apType.RICsubscriptionDeleteRequestIEs{}
	ie.Id.Value = e2apType.ProtocolIEIDRICrequestID
	ie.Criticality.Value = e2apType.CriticalityPresentReject
	ie.Value.Present = e2apType.RICsubscriptionDeleteRequestIEsPresentRICrequestID
	ie.Value.RICrequestID = ricRequestID
	deleteRequestIEs.List = append(deleteRequestIEs.List, ie)

	// RANfunctionID
	ranFunction, err := buildRANfunctionID(ranFunctionID)
	if err != nil {
		return nil, err
	}
	ie = e2apType.RICsubscriptionDeleteRequestIEs{}
	ie.Id.Value = e2apType.ProtocolIEIDRANfunctionID
	ie.Criticality.Value = e2apType.CriticalityPresentReject
	ie.Value.Present = e2apType.RICsubscriptionDeleteRequestIEsPresentRANfunctionID
	ie.Value.RANfunctionID = ranFunction
	deleteRequestIEs.List = append(deleteRequestIEs.List, ie)

	return e2ap.Encoder(pdu)
}

func BuildRICControlRequest(limits ric.Limits, req *ric.ControlRequest) ([]byte, error) {
	pdu, err := BuildRICControlRequestPDU(limits, req)
	if err != nil {
		return nil, err
	}
	return e2ap.Encoder(*pdu)
}

// BuildRICControlRequestPDU assembles RICrequestID, RANfunctionID,
// [RICcallProcessID], RICcontrolHeader, RICcontrolMessage and
// [RICcontrolAckRequest], in that order, all with criticality reject.
func BuildRICControlRequestPDU(limits ric.Limits, req *ric.ControlRequest) (*e2apType.E2APPDU, error) {
	if req == nil {
		return nil, fmt.Errorf("control request is nil")
	}

	var pdu e2apType.E2APPDU
	pdu.Present = e2apType.E2APPDUPresentInitiatingMessage
	pdu.InitiatingMessage = new(e2apType.InitiatingMessage)

	initiatingMessage := pdu.InitiatingMessage
	initiatingMessage.ProcedureCode.Value = e2apType.ProcedureCodeRICcontrol
	initiatingMessage.Criticality.Value = e2apType.CriticalityPresentReject
	initiatingMessage.Value.Present = e2apType.InitiatingMessagePresentRICcontrolRequest
	initiatingMessage.Value.RICcontrolRequest = new(e2apType.RICcontrolRequest)

	controlRequestIEs := &initiatingMessage.Value.RICcontrolRequest.ProtocolIEs

	// RICrequestID
	requestID, err := buildRICrequestID(req.RequestID)
	if err != nil {
		return nil, err
	}
	ie := e2apType.RICcontrolRequestIEs{}
	ie.Id.Value = e2apType.ProtocolIEIDRICrequestID
	ie.Criticality.Value = e2apType.CriticalityPresentReject
	ie.Value.Present = e2apType.RICcontrolRequestIEsPresentRICrequestID
	ie.Value.RICrequestID = requestID
	controlRequestIEs.List = append(controlRequestIEs.List, ie)

	// RANfunctionID
	ranFunctionID, err := buildRANfunctionID(req.RANFunctionID)
	if err != nil {
		return nil, err
	}
	ie = e2apType.RICcontrolRequestIEs{}
	ie.Id.Value = e2apType.ProtocolIEIDRANfunctionID
	ie.Criticality.Value = e2apType.CriticalityPresentReject
	ie.Value.Present = e2apType.RICcontrolRequestIEsPresentRANfunctionID
	ie.Value.RANfunctionID = ranFunctionID
	controlRequestIEs.List = append(controlRequestIEs.List, ie)

	// RICcallProcessID (optional)
	if req.CallProcessID != nil {
		callProcessID, err := limits.CopyOctets("RICcallProcessID", req.CallProcessID)
		if err != nil {
			return nil, err
		}
		ie = e2apType.RICcontrolRequestIEs{}
		ie.Id.Value = e2apType.ProtocolIEIDRICcallProcessID
		ie.Criticality.Value = e2apType.CriticalityPresentReject
		ie.Value.Present = e2apType.RICcontrolRequestIEsPresentRICcallProcessID
		ie.Value.RICcallProcessID = &e2apType.RICcallProcessID{Value: callProcessID}
		controlRequestIEs.List = append(controlRequestIEs.List, ie)
	}

	// RICcontrolHeader
	header, err := limits.CopyOctets("RICcontrolHeader", req.Header)
	if err != nil {
		return nil, err
	}
	if header == nil {
		header = []byte{}
	}
	ie = e2apType.RICcontrolRequestIEs{}
	ie.Id.Value = e2apType.ProtocolIEIDRICcontrolHeader
	ie.Criticality.Value = e2apType.CriticalityPresentReject
	ie.Value.Present = e2apType.RICcontrolRequestIEsPresentRICcontrolHeader
	ie.Value.RICcontrolHeader = &e2apType.RICcontrolHeader{Value: header}
	controlRequestIEs.List = append(controlRequestIEs.List, ie)

	// RICcontrolMessage
	controlMessage, err := limits.CopyOctets("RICcontrolMessage", req.Message)
	if err != nil {
		return nil, err
	}
	if controlMessage == nil {
		controlMessage = []byte{}
	}
	ie = e2apType.RICcontrolRequestIEs{}
	ie.Id.Value = e2apType.ProtocolIEIDRICcontrolMessage
	ie.Criticality.Value = e2apType.CriticalityPresentReject
	ie.Value.Present = e2apType.RICcontrolRequestIEsPresentRICcontrolMessage
	ie.Value.RICcontrolMessage = &e2apType.RICcontrolMessage{Value: controlMessage}
	controlRequestIEs.List = append(controlRequestIEs.List, ie)

	// RICcontrolAckRequest (optional)
	if req.AckRequest != ric.ControlAckRequestOmit {
		if err := checkRange("RICcontrolAckRequest", req.AckRequest, 0, 2); err != nil {
			return nil, err
		}
		ie = e2apType.RICcontrolRequestIEs{}
		ie.Id.Value = e2apType.ProtocolIEIDRICcontrolAckRequest
		ie.Criticality.Value = e2apType.CriticalityPresentReject
		ie.Value.Present = e2apType.RICcontrolRequestIEsPresentRICcontrolAckRequest
		ie.Value.RICcontrolAckRequest = &e2apType.RICcontrolAckRequest{Value: aper.Enumerated(req.AckRequest)}
		controlRequestIEs.List = append(controlRequestIEs.List, ie)
	}

	logger.E2apLog.Tracef("RIC Control Request built with %d IE(s)", len(controlRequestIEs.List))
	return &pdu, nil
}
