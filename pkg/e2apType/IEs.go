package e2apType

import "github.com/free5gc/aper"

// E2AP v01.01, clause 9.3.5 information element definitions

type RICrequestID struct {
	RICrequestorID int64 `aper:"valueLB:0,valueUB:65535"`
	RICinstanceID  int64 `aper:"valueLB:0,valueUB:65535"`
}

type RANfunctionID struct {
	Value int64 `aper:"valueLB:0,valueUB:4095"`
}

type RICactionID struct {
	Value int64 `aper:"valueLB:0,valueUB:255"`
}

type RICactionType struct {
	Value aper.Enumerated `aper:"valueExt,valueLB:0,valueUB:2"`
}

type RICactionDefinition struct {
	Value aper.OctetString
}

type RICsubsequentAction struct {
	RICsubsequentActionType RICsubsequentActionType
	RICtimeToWait           RICtimeToWait
}

type RICsubsequentActionType struct {
	Value aper.Enumerated `aper:"valueExt,valueLB:0,valueUB:1"`
}

type RICtimeToWait struct {
	Value aper.Enumerated `aper:"valueExt,valueLB:0,valueUB:17"`
}

type RICeventTriggerDefinition struct {
	Value aper.OctetString
}

type RICsubscriptionDetails struct {
	RICeventTriggerDefinition RICeventTriggerDefinition
	RICactionToBeSetupList    RICactionsToBeSetupList
}

type RICactionsToBeSetupList struct {
	List []RICactionToBeSetupItemIEs `aper:"sizeLB:1,sizeUB:16"`
}

type RICactionToBeSetupItemIEs struct {
	Id          ProtocolIEID
	Criticality Criticality
	Value       RICactionToBeSetupItemIEsValue `aper:"openType,referenceFieldName:Id"`
}

const (
	RICactionToBeSetupItemIEsPresentNothing int = iota /* No components present */
	RICactionToBeSetupItemIEsPresentRICactionToBeSetupItem
)

type RICactionToBeSetupItemIEsValue struct {
	Present                int
	RICactionToBeSetupItem *RICactionToBeSetupItem `aper:"valueExt,referenceFieldValue:19"`
}

type RICactionToBeSetupItem struct {
	RICactionID         RICactionID
	RICactionType       RICactionType
	RICactionDefinition *RICactionDefinition `aper:"optional"`
	RICsubsequentAction *RICsubsequentAction `aper:"valueExt,optional"`
}

type RICactionAdmittedList struct {
	List []RICactionAdmittedItemIEs `aper:"sizeLB:1,sizeUB:16"`
}

type RICactionAdmittedItemIEs struct {
	Id          ProtocolIEID
	Criticality Criticality
	Value       RICactionAdmittedItemIEsValue `aper:"openType,referenceFieldName:Id"`
}

const (
	RICactionAdmittedItemIEsPresentNothing int = iota /* No components present */
	RICactionAdmittedItemIEsPresentRICactionAdmittedItem
)

type RICactionAdmittedItemIEsValue struct {
	Present               int
	RICactionAdmittedItem *RICactionAdmittedItem `aper:"valueExt,referenceFieldValue:14"`
}

type RICactionAdmittedItem struct {
	RICactionID RICactionID
}

type RICactionNotAdmittedList struct {
	List []RICactionNotAdmittedItemIEs `aper:"sizeLB:0,sizeUB:16"`
}

type RICactionNotAdmittedItemIEs struct {
	Id          ProtocolIEID
	Criticality Criticality
	Value       RICactionNotAdmittedItemIEsValue `aper:"openType,referenceFieldName:Id"`
}

const (
	RICactionNotAdmittedItemIEsPresentNothing int = iota /* No components present */
	RICactionNotAdmittedItemIEsPresentRICactionNotAdmittedItem
)

type RICactionNotAdmittedItemIEsValue struct {
	Present                  int
	RICactionNotAdmittedItem *RICactionNotAdmittedItem `aper:"valueExt,referenceFieldValue:16"`
}

type RICactionNotAdmittedItem struct {
	RICactionID RICactionID
	Cause       Cause `aper:"valueExt,valueLB:0,valueUB:4"`
}

const (
	CausePresentNothing int = iota /* No components present */
	CausePresentRicRequest
	CausePresentRicService
	CausePresentTransport
	CausePresentProtocol
	CausePresentMisc
	/* Extensions may appear below */
)

type Cause struct {
	Present    int
	RicRequest *CauseRIC
	RicService *CauseRICservice
	Transport  *CauseTransport
	Protocol   *CauseProtocol
	Misc       *CauseMisc
}

type CauseRIC struct {
	Value aper.Enumerated `aper:"valueExt,valueLB:0,valueUB:10"`
}

type CauseRICservice struct {
	Value aper.Enumerated `aper:"valueExt,valueLB:0,valueUB:2"`
}

type CauseTransport struct {
	Value aper.Enumerated `aper:"valueExt,valueLB:0,valueUB:1"`
}

type CauseProtocol struct {
	Value aper.Enumerated `aper:"valueExt,valueLB:0,valueUB:6"`
}

type CauseMisc struct {
	Value aper.Enumerated `aper:"valueExt,valueLB:0,valueUB:3"`
}

type RICindicationSN struct {
	Value int64 `aper:"valueLB:0,valueUB:65535"`
}

type RICindicationType struct {
	Value aper.Enumerated `aper:"valueExt,valueLB:0,valueUB:1"`
}

type RICindicationHeader struct {
	Value aper.OctetString
}

type RICindicationMessage struct {
	Value aper.OctetString
}

type RICcallProcessID struct {
	Value aper.OctetString
}

type RICcontrolHeader struct {
	Value aper.OctetString
}

type RICcontrolMessage struct {
	Value aper.OctetString
}

type RICcontrolAckRequest struct {
	Value aper.Enumerated `aper:"valueExt,valueLB:0,valueUB:2"`
}

type RICcontrolStatus struct {
	Value aper.Enumerated `aper:"valueExt,valueLB:0,valueUB:2"`
}

type RICcontrolOutcome struct {
	Value aper.OctetString
}
