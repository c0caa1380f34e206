// Package ric holds the typed records exchanged with the E2AP procedure
// builders and extractors. Every byte slice in a decoded record is an
// independent copy owned by the record.
package ric

import "github.com/free5gc/e2ap/pkg/e2apType"

// ControlAckRequestOmit is the sentinel that leaves RICcontrolAckRequest
// out of a RIC Control Request.
const ControlAckRequestOmit int64 = -1

type ActionType int64

const (
	ActionTypeReport ActionType = ActionType(e2apType.RICactionTypePresentReport)
	ActionTypeInsert ActionType = ActionType(e2apType.RICactionTypePresentInsert)
	ActionTypePolicy ActionType = ActionType(e2apType.RICactionTypePresentPolicy)
)

type SubsequentActionType int64

const (
	SubsequentActionTypeContinue SubsequentActionType = SubsequentActionType(
		e2apType.RICsubsequentActionTypePresentContinue)
	SubsequentActionTypeWait SubsequentActionType = SubsequentActionType(
		e2apType.RICsubsequentActionTypePresentWait)
)

type IndicationType int64

const (
	IndicationTypeReport IndicationType = IndicationType(e2apType.RICindicationTypePresentReport)
	IndicationTypeInsert IndicationType = IndicationType(e2apType.RICindicationTypePresentInsert)
)

type ControlStatus int64

const (
	ControlStatusSuccess  ControlStatus = ControlStatus(e2apType.RICcontrolStatusPresentSuccess)
	ControlStatusRejected ControlStatus = ControlStatus(e2apType.RICcontrolStatusPresentRejected)
	ControlStatusFailed   ControlStatus = ControlStatus(e2apType.RICcontrolStatusPresentFailed)
)

// CauseType is the category of a Cause, numbered as the Cause CHOICE
// discriminator.
type CauseType int

const (
	CauseTypeNothing    CauseType = CauseType(e2apType.CausePresentNothing)
	CauseTypeRICRequest CauseType = CauseType(e2apType.CausePresentRicRequest)
	CauseTypeRICService CauseType = CauseType(e2apType.CausePresentRicService)
	CauseTypeTransport  CauseType = CauseType(e2apType.CausePresentTransport)
	CauseTypeProtocol   CauseType = CauseType(e2apType.CausePresentProtocol)
	CauseTypeMisc       CauseType = CauseType(e2apType.CausePresentMisc)
)

func (t CauseType) String() string {
	switch t {
	case CauseTypeRICRequest:
		return "ricRequest"
	case CauseTypeRICService:
		return "ricService"
	case CauseTypeTransport:
		return "transport"
	case CauseTypeProtocol:
		return "protocol"
	case CauseTypeMisc:
		return "misc"
	default:
		return "nothing"
	}
}

type RequestID struct {
	RequestorID int64 `json:"requestorID" yaml:"requestorID"`
	InstanceID  int64 `json:"instanceID" yaml:"instanceID"`
}

type SubsequentAction struct {
	Type       SubsequentActionType `json:"type" yaml:"type"`
	TimeToWait int64                `json:"timeToWait" yaml:"timeToWait"`
}

// Action is one RICaction-ToBeSetup-Item. Definition is attached only when
// it is non-empty and SubsequentAction only when it is non-nil.
type Action struct {
	ActionID         int64             `json:"actionID" yaml:"actionID"`
	ActionType       ActionType        `json:"actionType" yaml:"actionType"`
	Definition       []byte            `json:"definition,omitempty" yaml:"definition,omitempty"`
	SubsequentAction *SubsequentAction `json:"subsequentAction,omitempty" yaml:"subsequentAction,omitempty"`
}

type Cause struct {
	Type CauseType `json:"type"`
	ID   int64     `json:"id"`
}

type ActionAdmitted struct {
	ActionID int64 `json:"actionID"`
}

type ActionNotAdmitted struct {
	ActionID int64 `json:"actionID"`
	Cause    Cause `json:"cause"`
}

// SubscriptionRequest is the content of a RIC Subscription Request, as
// recovered on the E2 node side.
type SubscriptionRequest struct {
	RequestID              RequestID `json:"requestID"`
	RANFunctionID          int64     `json:"ranFunctionID"`
	EventTriggerDefinition []byte    `json:"eventTriggerDefinition"`
	Actions                []Action  `json:"actions"`
}

type SubscriptionResponse struct {
	RequestID          RequestID           `json:"requestID"`
	RANFunctionID      int64               `json:"ranFunctionID"`
	ActionAdmittedList []ActionAdmitted    `json:"actionAdmittedList"`
	ActionNotAdmitted  []ActionNotAdmitted `json:"actionNotAdmittedList"`
}

type SubscriptionFailure struct {
	RequestID         RequestID           `json:"requestID"`
	RANFunctionID     int64               `json:"ranFunctionID"`
	ActionNotAdmitted []ActionNotAdmitted `json:"actionNotAdmittedList"`
}

type SubscriptionDeleteRequest struct {
	RequestID     RequestID `json:"requestID"`
	RANFunctionID int64     `json:"ranFunctionID"`
}

type SubscriptionDeleteResponse struct {
	RequestID     RequestID `json:"requestID"`
	RANFunctionID int64     `json:"ranFunctionID"`
}

type SubscriptionDeleteFailure struct {
	RequestID     RequestID `json:"requestID"`
	RANFunctionID int64     `json:"ranFunctionID"`
	Cause         Cause     `json:"cause"`
}

// ControlRequest is the content of a RIC Control Request. A nil
// CallProcessID omits the IE, as does AckRequest == ControlAckRequestOmit.
type ControlRequest struct {
	RequestID     RequestID `json:"requestID" yaml:"requestID"`
	RANFunctionID int64     `json:"ranFunctionID" yaml:"ranFunctionID"`
	CallProcessID []byte    `json:"callProcessID,omitempty" yaml:"callProcessID,omitempty"`
	Header        []byte    `json:"header" yaml:"header"`
	Message       []byte    `json:"message" yaml:"message"`
	AckRequest    int64     `json:"ackRequest" yaml:"ackRequest"`
}

type ControlAcknowledge struct {
	RequestID     RequestID     `json:"requestID"`
	RANFunctionID int64         `json:"ranFunctionID"`
	CallProcessID []byte        `json:"callProcessID,omitempty"`
	Status        ControlStatus `json:"status"`
	Outcome       []byte        `json:"outcome,omitempty"`
}

type ControlFailure struct {
	RequestID     RequestID `json:"requestID"`
	RANFunctionID int64     `json:"ranFunctionID"`
	CallProcessID []byte    `json:"callProcessID,omitempty"`
	Cause         Cause     `json:"cause"`
	Outcome       []byte    `json:"outcome,omitempty"`
}

// Message is any decoded E2AP message together with the name of the
// procedure message it carries.
type Message struct {
	Name          string      `json:"message"`
	ProcedureCode int64       `json:"procedureCode"`
	Record        interface{} `json:"record"`
}
