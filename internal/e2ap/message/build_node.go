package message

import (
	"fmt"

	"github.com/free5gc/aper"
	"github.com/free5gc/e2ap/pkg/e2ap"
	"github.com/free5gc/e2ap/pkg/e2apType"
	"github.com/free5gc/e2ap/pkg/ric"
)

// Builders for the messages an E2 node sends back to the RIC.

func BuildRICSubscriptionResponse(limits ric.Limits, resp *ric.SubscriptionResponse) ([]byte, error) {
	pdu, err := BuildRICSubscriptionResponsePDU(limits, resp)
	if err != nil {
		return nil, err
	}
	return e2ap.Encoder(*pdu)
}

func BuildRICSubscriptionResponsePDU(limits ric.Limits, resp *ric.SubscriptionResponse) (
	*e2apType.E2APPDU, error,
) {
	if resp == nil {
		return nil, fmt.Errorf("subscription response is nil")
	}
	if err := limits.CheckActions(len(resp.ActionAdmittedList)); err != nil {
		return nil, err
	}

	var pdu e2apType.E2APPDU
	pdu.Present = e2apType.E2APPDUPresentSuccessfulOutcome
	pdu.SuccessfulOutcome = new(e2apType.SuccessfulOutcome)

	successfulOutcome := pdu.SuccessfulOutcome
	successfulOutcome.ProcedureCode.Value = e2apType.ProcedureCodeRICsubscription
	successfulOutcome.Criticality.Value = e2apType.CriticalityPresentReject
	successfulOutcome.Value.Present = e2apType.SuccessfulOutcomePresentRICsubscriptionResponse
	successfulOutcome.Value.RICsubscriptionResponse = new(e2apType.RICsubscriptionResponse)

	responseIEs := &successfulOutcome.Value.RICsubscriptionResponse.ProtocolIEs

	// RICrequestID
	requestID, err := buildRICrequestID(resp.RequestID)
	if err != nil {
		return nil, err
	}
	ie := e2apType.RICsubscriptionResponseIEs{}
	ie.Id.Value = e2apType.ProtocolIEIDRICrequestID
	ie.Criticality.Value = e2apType.CriticalityPresentReject
	ie.Value.Present = e2apType.RICsubscriptionResponseIEsPresentRICrequestID
	ie.Value.RICrequestID = requestID
	responseIEs.List = append(responseIEs.List, ie)

	// RANfunctionID
	ranFunctionID, err := buildRANfunctionID(resp.RANFunctionID)
	if err != nil {
		return nil, err
	}
	ie = e2apType.RICsubscriptionResponseIEs{}
	ie.Id.Value = e2apType.ProtocolIEIDRANfunctionID
	ie.Criticality.Value = e2apType.CriticalityPresentReject
	ie.Value.Present = e2apType.RICsubscriptionResponseIEsPresentRANfunctionID
	ie.Value.RANfunctionID = ranFunctionID
	responseIEs.List = append(responseIEs.List, ie)

	// RICactions-Admitted
	ie = e2apType.RICsubscriptionResponseIEs{}
	ie.Id.Value = e2apType.ProtocolIEIDRICactionsAdmitted
	ie.Criticality.Value = e2apType.CriticalityPresentReject
	ie.Value.Present = e2apType.RICsubscriptionResponseIEsPresentRICactionsAdmitted
	ie.Value.RICactionsAdmitted = new(e2apType.RICactionAdmittedList)
	for _, admitted := range resp.ActionAdmittedList {
		if err := checkRange("RICaction-Admitted-Item.ricActionID", admitted.ActionID, 0, 255); err != nil {
			return nil, err
		}
		item := e2apType.RICactionAdmittedItemIEs{}
		item.Id.Value = e2apType.ProtocolIEIDRICactionAdmittedItem
		item.Criticality.Value = e2apType.CriticalityPresentReject
		item.Value.Present = e2apType.RICactionAdmittedItemIEsPresentRICactionAdmittedItem
		item.Value.RICactionAdmittedItem = &e2apType.RICactionAdmittedItem{
			RICactionID: e2apType.RICactionID{Value: admitted.ActionID},
		}
		ie.Value.RICactionsAdmitted.List = append(ie.Value.RICactionsAdmitted.List, item)
	}
	responseIEs.List = append(responseIEs.List, ie)

	// RICactions-NotAdmitted (optional)
	if resp.ActionNotAdmitted != nil {
		notAdmittedList, err := buildRICactionNotAdmittedList(limits, resp.ActionNotAdmitted)
		if err != nil {
			return nil, err
		}
		ie = e2apType.RICsubscriptionResponseIEs{}
		ie.Id.Value = e2apType.ProtocolIEIDRICactionsNotAdmitted
		ie.Criticality.Value = e2apType.CriticalityPresentReject
		ie.Value.Present = e2apType.RICsubscriptionResponseIEsPresentRICactionsNotAdmitted
		ie.Value.RICactionsNotAdmitted = notAdmittedList
		responseIEs.List = append(responseIEs.List, ie)
	}

	return &pdu, nil
}

func BuildRICSubscriptionFailure(limits ric.Limits, failure *ric.SubscriptionFailure) ([]byte, error) {
	if failure == nil {
		return nil, fmt.Errorf("subscription failure is nil")
	}

	var pdu e2apType.E2APPDU
	pdu.Present = e2apType.E2APPDUPresentUnsuccessfulOutcome
	pdu.UnsuccessfulOutcome = new(e2apType.UnsuccessfulOutcome)

	unsuccessfulOutcome := pdu.UnsuccessfulOutcome
	unsuccessfulOutcome.ProcedureCode.Value = e2apType.ProcedureCodeRICsubscription
	unsuccessfulOutcome.Criticality.Value = e2apType.CriticalityPresentReject
	unsuccessfulOutcome.Value.Present = e2apType.UnsuccessfulOutcomePresentRICsubscriptionFailure
	unsuccessfulOutcome.Value.RICsubscriptionFailure = new(e2apType.RICsubscriptionFailure)

	failureIEs := &unsuccessfulOutcome.Value.RICsubscriptionFailure.ProtocolIEs

	// RICrequestID
	requestID, err := buildRICrequestID(failure.RequestID)
	if err != nil {
		return nil, err
	}
	ie := e2apType.RICsubscriptionFailureIEs{}
	ie.Id.Value = e2apType.ProtocolIEIDRICrequestID
	ie.Criticality.Value = e2apType.CriticalityPresentReject
	ie.Value.Present = e2apType.RICsubscriptionFailureIEsPresentRICrequestID
	ie.Value.RICrequestID = requestID
	failureIEs.List = append(failureIEs.List, ie)

	// RANfunctionID
	ranFunctionID, err := buildRANfunctionID(failure.RANFunctionID)
	if err != nil {
		return nil, err
	}
	ie = e2apType.RICsubscriptionFailureIEs{}
	ie.Id.Value = e2apType.ProtocolIEIDRANfunctionID
	ie.Criticality.Value = e2apType.CriticalityPresentReject
	ie.Value.Present = e2apType.RICsubscriptionFailureIEsPresentRANfunctionID
	ie.Value.RANfunctionID = ranFunctionID
	failureIEs.List = append(failureIEs.List, ie)

	// RICactions-NotAdmitted
	notAdmittedList, err := buildRICactionNotAdmittedList(limits, failure.ActionNotAdmitted)
	if err != nil {
		return nil, err
	}
	ie = e2apType.RICsubscriptionFailureIEs{}
	ie.Id.Value = e2apType.ProtocolIEIDRICactionsNotAdmitted
	ie.Criticality.Value = e2apType.CriticalityPresentReject
	ie.Value.Present = e2apType.RICsubscriptionFailureIEsPresentRICactionsNotAdmitted
	ie.Value.RICactionsNotAdmitted = notAdmittedList
	failureIEs.List = append(failureIEs.List, ie)

	return e2ap.Encoder(pdu)
}

func BuildRICSubscriptionDeleteResponse(requestID ric.RequestID, ranFunctionID int64) ([]byte, error) {
	var pdu e2apType.E2APPDU
	pdu.Present = e2apType.E2APPDUPresentSuccessfulOutcome
	pdu.SuccessfulOutcome = new(e2apType.SuccessfulOutcome)

	successfulOutcome := pdu.SuccessfulOutcome
	successfulOutcome.ProcedureCode.Value = e2apType.ProcedureCodeRICsubscriptionDelete
	successfulOutcome.Criticality.Value = e2apType.CriticalityPresentReject
	successfulOutcome.Value.Present = e2apType.SuccessfulOutcomePresentRICsubscriptionDeleteResponse
	successfulOutcome.Value.RICsubscriptionDeleteResponse = new(e2apType.RICsubscriptionDeleteResponse)

	deleteResponseIEs := &successfulOutcome.Value.RICsubscriptionDeleteResponse.ProtocolIEs

	// RICrequestID
	ricRequestID, err := buildRICrequestID(requestID)
	if err != nil {
		return nil, err
	}
	ie := e2apType.RICsubscriptionDeleteResponseIEs{}
	ie.Id.Value = e2apType.ProtocolIEIDRICrequestID
	ie.Criticality.Value = e2apType.CriticalityPresentReject
	ie.Value.Present = e2apType.RICsubscriptionDeleteResponseIEsPresentRICrequestID
	ie.Value.RICrequestID = ricRequestID
	deleteResponseIEs.List = append(deleteResponseIEs.List, ie)

	// RANfunctionID
	ranFunction, err := buildRANfunctionID(ranFunctionID)
	if err != nil {
		return nil, err
	}
	ie = e2apType.RICsubscriptionDeleteResponseIEs{}
	ie.Id.Value = e2apType.ProtocolIEIDRANfunctionID
	ie.Criticality.Value = e2apType.CriticalityPresentReject
	ie.Value.Present = e2apType.RICsubscriptionDeleteResponseIEsPresentRANfunctionID
	ie.Value.RANfunctionID = ranFunction
	deleteResponseIEs.List = append(deleteResponseIEs.List, ie)

	return e2ap.Encoder(pdu)
}

func BuildRICSubscriptionDeleteFailure(failure *ric.SubscriptionDeleteFailure) ([]byte, error) {
	if failure == nil {
		return nil, fmt.Errorf("subscription delete failure is nil")
	}

	var pdu e2apType.E2APPDU
	pdu.Present = e2apType.E2APPDUPresentUnsuccessfulOutcome
	pdu.UnsuccessfulOutcome = new(e2apType.UnsuccessfulOutcome)

	unsuccessfulOutcome := pdu.UnsuccessfulOutcome
	unsuccessfulOutcome.ProcedureCode.Value = e2apType.ProcedureCodeRICsubscriptionDelete
	unsuccessfulOutcome.Criticality.Value = e2apType.CriticalityPresentReject
	unsuccessfulOutcome.Value.Present = e2apType.UnsuccessfulOutcomePresentRICsubscriptionDeleteFailure
	unsuccessfulOutcome.Value.RICsubscriptionDeleteFailure = new(e2apType.RICsubscriptionDeleteFailure)

	failureIEs := &unsuccessfulOutcome.Value.RICsubscriptionDeleteFailure.ProtocolIEs

	// RICrequestID
	requestID, err := buildRICrequestID(failure.RequestID)
	if err != nil {
		return nil, err
	}
	ie := e2apType.RICsubscriptionDeleteFailureIEs{}
	ie.Id.Value = e2apType.ProtocolIEIDRICrequestID
	ie.Criticality.Value = e2apType.CriticalityPresentReject
	ie.Value.Present = e2apType.RICsubscriptionDeleteFailureIEsPresentRICrequestID
	ie.Value.RICrequestID = requestID
	failureIEs.List = append(failureIEs.List, ie)

	// RANfunctionID
	ranFunctionID, err := buildRANfunctionID(failure.RANFunctionID)
	if err != nil {
		return nil, err
	}
	ie = e2apType.RICsubscriptionDeleteFailureIEs{}
	ie.Id.Value = e2apType.ProtocolIEIDRANfunctionID
	ie.Criticality.Value = e2apType.CriticalityPresentReject
	ie.Value.Present = e2apType.RICsubscriptionDeleteFailureIEsPresentRANfunctionID
	ie.Value.RANfunctionID = ranFunctionID
	failureIEs.List = append(failureIEs.List, ie)

	// Cause
	cause, err := BuildCause(failure.Cause)
	if err != nil {
		return nil, err
	}
	ie = e2apType.RICsubscriptionDeleteFailureIEs{}
	ie.Id.Value = e2apType.ProtocolIEIDCause
	ie.Criticality.Value = e2apType.CriticalityPresentIgnore
	ie.Value.Present = e2apType.RICsubscriptionDeleteFailureIEsPresentCause
	ie.Value.Cause = &cause
	failureIEs.List = append(failureIEs.List, ie)

	return e2ap.Encoder(pdu)
}

func BuildRICIndication(limits ric.Limits, ind *ric.Indication) ([]byte, error) {
	pdu, err := BuildRICIndicationPDU(limits, ind)
	if err != nil {
		return nil, err
	}
	return e2ap.Encoder(*pdu)
}

// BuildRICIndicationPDU assembles a RIC Indication. CallProcessID is
// attached only when non-nil.
func BuildRICIndicationPDU(limits ric.Limits, ind *ric.Indication) (*e2apType.E2APPDU, error) {
	if ind == nil {
		return nil, fmt.Errorf("indication is nil")
	}

	var pdu e2apType.E2APPDU
	pdu.Present = e2apType.E2APPDUPresentInitiatingMessage
	pdu.InitiatingMessage = new(e2apType.InitiatingMessage)

	initiatingMessage := pdu.InitiatingMessage
	initiatingMessage.ProcedureCode.Value = e2apType.ProcedureCodeRICindication
	initiatingMessage.Criticality.Value = e2apType.CriticalityPresentIgnore
	initiatingMessage.Value.Present = e2apType.InitiatingMessagePresentRICindication
	initiatingMessage.Value.RICindication = new(e2apType.RICindication)

	indicationIEs := &initiatingMessage.Value.RICindication.ProtocolIEs

	// RICrequestID
	requestID, err := buildRICrequestID(ind.RequestID)
	if err != nil {
		return nil, err
	}
	ie := e2apType.RICindicationIEs{}
	ie.Id.Value = e2apType.ProtocolIEIDRICrequestID
	ie.Criticality.Value = e2apType.CriticalityPresentReject
	ie.Value.Present = e2apType.RICindicationIEsPresentRICrequestID
	ie.Value.RICrequestID = requestID
	indicationIEs.List = append(indicationIEs.List, ie)

	// RANfunctionID
	ranFunctionID, err := buildRANfunctionID(ind.RANFunctionID)
	if err != nil {
		return nil, err
	}
	ie = e2apType.RICindicationIEs{}
	ie.Id.Value = e2apType.ProtocolIEIDRANfunctionID
	ie.Criticality.Value = e2apType.CriticalityPresentReject
	ie.Value.Present = e2apType.RICindicationIEsPresentRANfunctionID
	ie.Value.RANfunctionID = ranFunctionID
	indicationIEs.List = append(indicationIEs.List, ie)

	// RICactionID
	if err := checkRange("RICactionID", ind.ActionID, 0, 255); err != nil {
		return nil, err
	}
	ie = e2apType.RICindicationIEs{}
	ie.Id.Value = e2apType.ProtocolIEIDRICactionID
	ie.Criticality.Value = e2apType.CriticalityPresentReject
	ie.Value.Present = e2apType.RICindicationIEsPresentRICactionID
	ie.Value.RICactionID = &e2apType.RICactionID{Value: ind.ActionID}
	indicationIEs.List = append(indicationIEs.List, ie)

	// RICindicationSN
	if err := checkRange("RICindicationSN", ind.IndicationSN, 0, 65535); err != nil {
		return nil, err
	}
	ie = e2apType.RICindicationIEs{}
	ie.Id.Value = e2apType.ProtocolIEIDRICindicationSN
	ie.Criticality.Value = e2apType.CriticalityPresentReject
	ie.Value.Present = e2apType.RICindicationIEsPresentRICindicationSN
	ie.Value.RICindicationSN = &e2apType.RICindicationSN{Value: ind.IndicationSN}
	indicationIEs.List = append(indicationIEs.List, ie)

	// RICindicationType
	if err := checkRange("RICindicationType", int64(ind.IndicationType), 0, 1); err != nil {
		return nil, err
	}
	ie = e2apType.RICindicationIEs{}
	ie.Id.Value = e2apType.ProtocolIEIDRICindicationType
	ie.Criticality.Value = e2apType.CriticalityPresentReject
	ie.Value.Present = e2apType.RICindicationIEsPresentRICindicationType
	ie.Value.RICindicationType = &e2apType.RICindicationType{Value: aper.Enumerated(ind.IndicationType)}
	indicationIEs.List = append(indicationIEs.List, ie)

	// RICindicationHeader
	header, err := limits.CopyOctets("RICindicationHeader", ind.Header)
	if err != nil {
		return nil, err
	}
	if header == nil {
		header = []byte{}
	}
	ie = e2apType.RICindicationIEs{}
	ie.Id.Value = e2apType.ProtocolIEIDRICindicationHeader
	ie.Criticality.Value = e2apType.CriticalityPresentReject
	ie.Value.Present = e2apType.RICindicationIEsPresentRICindicationHeader
	ie.Value.RICindicationHeader = &e2apType.RICindicationHeader{Value: header}
	indicationIEs.List = append(indicationIEs.List, ie)

	// RICindicationMessage
	indicationMessage, err := limits.CopyOctets("RICindicationMessage", ind.Message)
	if err != nil {
		return nil, err
	}
	if indicationMessage == nil {
		indicationMessage = []byte{}
	}
	ie = e2apType.RICindicationIEs{}
	ie.Id.Value = e2apType.ProtocolIEIDRICindicationMessage
	ie.Criticality.Value = e2apType.CriticalityPresentReject
	ie.Value.Present = e2apType.RICindicationIEsPresentRICindicationMessage
	ie.Value.RICindicationMessage = &e2apType.RICindicationMessage{Value: indicationMessage}
	indicationIEs.List = append(indicationIEs.List, ie)

	// RICcallProcessID (optional)
	if ind.CallProcessID != nil {
		callProcessID, err := limits.CopyOctets("RICcallProcessID", ind.CallProcessID)
		if err != nil {
			return nil, err
		}
		ie = e2apType.RICindicationIEs{}
		ie.Id.Value = e2apType.ProtocolIEIDRICcallProcessID
		ie.Criticality.Value = e2apType.CriticalityPresentReject
		ie.Value.Present = e2apType.RICindicationIEsPresentRICcallProcessID
		ie.Value.RICcallProcessID = &e2apType.RICcallProcessID{Value: callProcessID}
		indicationIEs.List = append(indicationIEs.List, ie)
	}

	return &pdu, nil
}

func BuildRICControlAcknowledge(limits ric.Limits, ack *ric.ControlAcknowledge) ([]byte, error) {
	if ack == nil {
		return nil, fmt.Errorf("control acknowledge is nil")
	}

	var pdu e2apType.E2APPDU
	pdu.Present = e2apType.E2APPDUPresentSuccessfulOutcome
	pdu.SuccessfulOutcome = new(e2apType.SuccessfulOutcome)

	successfulOutcome := pdu.SuccessfulOutcome
	successfulOutcome.ProcedureCode.Value = e2apType.ProcedureCodeRICcontrol
	successfulOutcome.Criticality.Value = e2apType.CriticalityPresentReject
	successfulOutcome.Value.Present = e2apType.SuccessfulOutcomePresentRICcontrolAcknowledge
	successfulOutcome.Value.RICcontrolAcknowledge = new(e2apType.RICcontrolAcknowledge)

	ackIEs := &successfulOutcome.Value.RICcontrolAcknowledge.ProtocolIEs

	// RICrequestID
	requestID, err := buildRICrequestID(ack.RequestID)
	if err != nil {
		return nil, err
	}
	ie := e2apType.RICcontrolAcknowledgeIEs{}
	ie.Id.Value = e2apType.ProtocolIEIDRICrequestID
	ie.Criticality.Value = e2apType.CriticalityPresentReject
	ie.Value.Present = e2apType.RICcontrolAcknowledgeIEsPresentRICrequestID
	ie.Value.RICrequestID = requestID
	ackIEs.List = append(ackIEs.List, ie)

	// RANfunctionID
	ranFunctionID, err := buildRANfunctionID(ack.RANFunctionID)
	if err != nil {
		return nil, err
	}
	ie = e2apType.RICcontrolAcknowledgeIEs{}
	ie.Id.Value = e2apType.ProtocolIEIDRANfunctionID
	ie.Criticality.Value = e2apType.CriticalityPresentReject
	ie.Value.Present = e2apType.RICcontrolAcknowledgeIEsPresentRANfunctionID
	ie.Value.RANfunctionID = ranFunctionID
	ackIEs.List = append(ackIEs.List, ie)

	// RICcallProcessID (optional)
	if ack.CallProcessID != nil {
		callProcessID, err := limits.CopyOctets("RICcallProcessID", ack.CallProcessID)
		if err != nil {
			return nil, err
		}
		ie = e2apType.RICcontrolAcknowledgeIEs{}
		ie.Id.Value = e2apType.ProtocolIEIDRICcallProcessID
		ie.Criticality.Value = e2apType.CriticalityPresentReject
		ie.Value.Present = e2apType.RICcontrolAcknowledgeIEsPresentRICcallProcessID
		ie.Value.RICcallProcessID = &e2apType.RICcallProcessID{Value: callProcessID}
		ackIEs.List = append(ackIEs.List, ie)
	}

	// RICcontrolStatus
	if err := checkRange("RICcontrolStatus", int64(ack.Status), 0, 2); err != nil {
		return nil, err
	}
	ie = e2apType.RICcontrolAcknowledgeIEs{}
	ie.Id.Value = e2apType.ProtocolIEIDRICcontrolStatus
	ie.Criticality.Value = e2apType.CriticalityPresentReject
	ie.Value.Present = e2apType.RICcontrolAcknowledgeIEsPresentRICcontrolStatus
	ie.Value.RICcontrolStatus = &e2apType.RICcontrolStatus{Value: aper.Enumerated(ack.Status)}
	ackIEs.List = append(ackIEs.List, ie)

	// RICcontrolOutcome (optional)
	if ack.Outcome != nil {
		outcome, err := limits.CopyOctets("RICcontrolOutcome", ack.Outcome)
		if err != nil {
			return nil, err
		}
		ie = e2apType.RICcontrolAcknowledgeIEs{}
		ie.Id.Value = e2apType.ProtocolIEIDRICcontrolOutcome
		ie.Criticality.Value = e2apType.CriticalityPresentReject
		ie.Value.Present = e2apType.RICcontrolAcknowledgeIEsPresentRICcontrolOutcome
		ie.Value.RICcontrolOutcome = &e2apType.RICcontrolOutcome{Value: outcome}
		ackIEs.List = append(ackIEs.List, ie)
	}

	return e2ap.Encoder(pdu)
}

func BuildRICControlFailure(limits ric.Limits, failure *ric.ControlFailure) ([]byte, error) {
	if failure == nil {
		return nil, fmt.Errorf("control failure is nil")
	}

	var pdu e2apType.E2APPDU
	pdu.Present = e2apType.E2APPDUPresentUnsuccessfulOutcome
	pdu.UnsuccessfulOutcome = new(e2apType.UnsuccessfulOutcome)

	unsuccessfulOutcome := pdu.UnsuccessfulOutcome
	unsuccessfulOutcome.ProcedureCode.Value = e2apType.ProcedureCodeRICcontrol
	unsuccessfulOutcome.Criticality.Value = e2apType.CriticalityPresentReject
	unsuccessfulOutcome.Value.Present = e2apType.UnsuccessfulOutcomePresentRICcontrolFailure
	unsuccessfulOutcome.Value.RICcontrolFailure = new(e2apType.RICcontrolFailure)

	failureIEs := &unsuccessfulOutcome.Value.RICcontrolFailure.ProtocolIEs

	// RICrequestID
	requestID, err := buildRICrequestID(failure.RequestID)
	if err != nil {
		return nil, err
	}
	ie := e2apType.RICcontrolFailureIEs{}
	ie.Id.Value = e2apType.ProtocolIEIDRICrequestID
	ie.Criticality.Value = e2apType.CriticalityPresentReject
	ie.Value.Present = e2apType.RICcontrolFailureIEsPresentRICrequestID
	ie.Value.RICrequestID = requestID
	failureIEs.List = append(failureIEs.List, ie)

	// RANfunctionID
	ranFunctionID, err := buildRANfunctionID(failure.RANFunctionID)
	if err != nil {
		return nil, err
	}
	ie = e2apType.RICcontrolFailureIEs{}
	ie.Id.Value = e2apType.ProtocolIEIDRANfunctionID
	ie.Criticality.Value = e2apType.CriticalityPresentReject
	ie.Value.Present = e2apType.RICcontrolFailureIEsPresentRANfunctionID
	ie.Value.RANfunctionID = ranFunctionID
	failureIEs.List = append(failureIEs.List, ie)

	// RICcallProcessID (optional)
	if failure.CallProcessID != nil {
		callProcessID, err := limits.CopyOctets("RICcallProcessID", failure.CallProcessID)
		if err != nil {
			return nil, err
		}
		ie = e2apType.RICcontrolFailureIEs{}
		ie.Id.Value = e2apType.ProtocolIEIDRICcallProcessID
		ie.Criticality.Value = e2apType.CriticalityPresentReject
		ie.Value.Present = e2apType.RICcontrolFailureIEsPresentRICcallProcessID
		ie.Value.RICcallProcessID = &e2apType.RICcallProcessID{Value: callProcessID}
		failureIEs.List = append(failureIEs.List, ie)
	}

	// Cause
	cause, err := BuildCause(failure.Cause)
	if err != nil {
		return nil, err
	}
	ie = e2apType.RICcontrolFailureIEs{}
	ie.Id.Value = e2apType.ProtocolIEIDCause
	ie.Criticality.Value = e2apType.CriticalityPresentIgnore
	ie.Value.Present = e2apType.RICcontrolFailureIEsPresentCause
	ie.Value.Cause = &cause
	failureIEs.List = append(failureIEs.List, ie)

	// RICcontrolOutcome (optional)
	if failure.Outcome != nil {
		outcome, err := limits.CopyOctets("RICcontrolOutcome", failure.Outcome)
		if err != nil {
			return nil, err
		}
		ie = e2apType.RICcontrolFailureIEs{}
		ie.Id.Value = e2apType.ProtocolIEIDRICcontrolOutcome
		ie.Criticality.Value = e2apType.CriticalityPresentReject
		ie.Value.Present = e2apType.RICcontrolFailureIEsPresentRICcontrolOutcome
		ie.Value.RICcontrolOutcome = &e2apType.RICcontrolOutcome{Value: outcome}
		failureIEs.List = append(failureIEs.List, ie)
	}

	return e2ap.Encoder(pdu)
}
