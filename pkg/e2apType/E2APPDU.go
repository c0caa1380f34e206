package e2apType

import "github.com/free5gc/aper"

const (
	E2APPDUPresentNothing int = iota /* No components present */
	E2APPDUPresentInitiatingMessage
	E2APPDUPresentSuccessfulOutcome
	E2APPDUPresentUnsuccessfulOutcome
	/* Extensions may appear below */
)

type E2APPDU struct {
	Present             int
	InitiatingMessage   *InitiatingMessage
	SuccessfulOutcome   *SuccessfulOutcome
	UnsuccessfulOutcome *UnsuccessfulOutcome
}

type ProcedureCode struct {
	Value int64 `aper:"valueLB:0,valueUB:255"`
}

type Criticality struct {
	Value aper.Enumerated `aper:"valueLB:0,valueUB:2"`
}

type ProtocolIEID struct {
	Value int64 `aper:"valueLB:0,valueUB:65535"`
}

type InitiatingMessage struct {
	ProcedureCode ProcedureCode
	Criticality   Criticality
	Value         InitiatingMessageValue `aper:"openType,referenceFieldName:ProcedureCode"`
}

const (
	InitiatingMessagePresentNothing int = iota /* No components present */
	InitiatingMessagePresentRICsubscriptionRequest
	InitiatingMessagePresentRICsubscriptionDeleteRequest
	InitiatingMessagePresentRICindication
	InitiatingMessagePresentRICcontrolRequest
)

type InitiatingMessageValue struct {
	Present                      int
	RICsubscriptionRequest       *RICsubscriptionRequest       `aper:"valueExt,referenceFieldValue:8"`
	RICsubscriptionDeleteRequest *RICsubscriptionDeleteRequest `aper:"valueExt,referenceFieldValue:9"`
	RICindication                *RICindication                `aper:"valueExt,referenceFieldValue:5"`
	RICcontrolRequest            *RICcontrolRequest            `aper:"valueExt,referenceFieldValue:4"`
}

type SuccessfulOutcome struct {
	ProcedureCode ProcedureCode
	Criticality   Criticality
	Value         SuccessfulOutcomeValue `aper:"openType,referenceFieldName:ProcedureCode"`
}

const (
	SuccessfulOutcomePresentNothing int = iota /* No components present */
	SuccessfulOutcomePresentRICsubscriptionResponse
	SuccessfulOutcomePresentRICsubscriptionDeleteResponse
	SuccessfulOutcomePresentRICcontrolAcknowledge
)

type SuccessfulOutcomeValue struct {
	Present                       int
	RICsubscriptionResponse       *RICsubscriptionResponse       `aper:"valueExt,referenceFieldValue:8"`
	RICsubscriptionDeleteResponse *RICsubscriptionDeleteResponse `aper:"valueExt,referenceFieldValue:9"`
	RICcontrolAcknowledge         *RICcontrolAcknowledge         `aper:"valueExt,referenceFieldValue:4"`
}

type UnsuccessfulOutcome struct {
	ProcedureCode ProcedureCode
	Criticality   Criticality
	Value         UnsuccessfulOutcomeValue `aper:"openType,referenceFieldName:ProcedureCode"`
}

const (
	UnsuccessfulOutcomePresentNothing int = iota /* No components present */
	UnsuccessfulOutcomePresentRICsubscriptionFailure
	UnsuccessfulOutcomePresentRICsubscriptionDeleteFailure
	UnsuccessfulOutcomePresentRICcontrolFailure
)

type UnsuccessfulOutcomeValue struct {
	Present                      int
	RICsubscriptionFailure       *RICsubscriptionFailure       `aper:"valueExt,referenceFieldValue:8"`
	RICsubscriptionDeleteFailure *RICsubscriptionDeleteFailure `aper:"valueExt,referenceFieldValue:9"`
	RICcontrolFailure            *RICcontrolFailure            `aper:"valueExt,referenceFieldValue:4"`
}
