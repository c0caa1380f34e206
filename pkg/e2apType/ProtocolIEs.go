package e2apType

// E2AP v01.01, clause 9.2 message contents

type RICsubscriptionRequest struct {
	ProtocolIEs ProtocolIEContainerRICsubscriptionRequestIEs
}

type ProtocolIEContainerRICsubscriptionRequestIEs struct {
	List []RICsubscriptionRequestIEs `aper:"sizeLB:0,sizeUB:65535"`
}

type RICsubscriptionRequestIEs struct {
	Id          ProtocolIEID
	Criticality Criticality
	Value       RICsubscriptionRequestIEsValue `aper:"openType,referenceFieldName:Id"`
}

const (
	RICsubscriptionRequestIEsPresentNothing int = iota /* No components present */
	RICsubscriptionRequestIEsPresentRICrequestID
	RICsubscriptionRequestIEsPresentRANfunctionID
	RICsubscriptionRequestIEsPresentRICsubscriptionDetails
)

type RICsubscriptionRequestIEsValue struct {
	Present                int
	RICrequestID           *RICrequestID           `aper:"valueExt,referenceFieldValue:29"`
	RANfunctionID          *RANfunctionID          `aper:"referenceFieldValue:5"`
	RICsubscriptionDetails *RICsubscriptionDetails `aper:"valueExt,referenceFieldValue:30"`
}

type RICsubscriptionResponse struct {
	ProtocolIEs ProtocolIEContainerRICsubscriptionResponseIEs
}

type ProtocolIEContainerRICsubscriptionResponseIEs struct {
	List []RICsubscriptionResponseIEs `aper:"sizeLB:0,sizeUB:65535"`
}

type RICsubscriptionResponseIEs struct {
	Id          ProtocolIEID
	Criticality Criticality
	Value       RICsubscriptionResponseIEsValue `aper:"openType,referenceFieldName:Id"`
}

const (
	RICsubscriptionResponseIEsPresentNothing int = iota /* No components present */
	RICsubscriptionResponseIEsPresentRICrequestID
	RICsubscriptionResponseIEsPresentRANfunctionID
	RICsubscriptionResponseIEsPresentRICactionsAdmitted
	RICsubscriptionResponseIEsPresentRICactionsNotAdmitted
)

type RICsubscriptionResponseIEsValue struct {
	Present               int
	RICrequestID          *RICrequestID             `aper:"valueExt,referenceFieldValue:29"`
	RANfunctionID         *RANfunctionID            `aper:"referenceFieldValue:5"`
	RICactionsAdmitted    *RICactionAdmittedList    `aper:"referenceFieldValue:17"`
	RICactionsNotAdmitted *RICactionNotAdmittedList `aper:"referenceFieldValue:18"`
}

type RICsubscriptionFailure struct {
	ProtocolIEs ProtocolIEContainerRICsubscriptionFailureIEs
}

type ProtocolIEContainerRICsubscriptionFailureIEs struct {
	List []RICsubscriptionFailureIEs `aper:"sizeLB:0,sizeUB:65535"`
}

type RICsubscriptionFailureIEs struct {
	Id          ProtocolIEID
	Criticality Criticality
	Value       RICsubscriptionFailureIEsValue `aper:"openType,referenceFieldName:Id"`
}

const (
	RICsubscriptionFailureIEsPresentNothing int = iota /* No components present */
	RICsubscriptionFailureIEsPresentRICrequestID
	RICsubscriptionFailureIEsPresentRANfunctionID
	RICsubscriptionFailureIEsPresentRICactionsNotAdmitted
)

type RICsubscriptionFailureIEsValue struct {
	Present               int
	RICrequestID          *RICrequestID             `aper:"valueExt,referenceFieldValue:29"`
	RANfunctionID         *RANfunctionID            `aper:"referenceFieldValue:5"`
	RICactionsNotAdmitted *RICactionNotAdmittedList `aper:"referenceFieldValue:18"`
}

type RICsubscriptionDeleteRequest struct {
	ProtocolIEs ProtocolIEContainerRICsubscriptionDeleteRequestIEs
}

type ProtocolIEContainerRICsubscriptionDeleteRequestIEs struct {
	List []RICsubscriptionDeleteRequestIEs `aper:"sizeLB:0,sizeUB:65535"`
}

type RICsubscriptionDeleteRequestIEs struct {
	Id          ProtocolIEID
	Criticality Criticality
	Value       RICsubscriptionDeleteRequestIEsValue `aper:"openType,referenceFieldName:Id"`
}

const (
	RICsubscriptionDeleteRequestIEsPresentNothing int = iota /* No components present */
	RICsubscriptionDeleteRequestIEsPresentRICrequestID
	RICsubscriptionDeleteRequestIEsPresentRANfunctionID
)

type RICsubscriptionDeleteRequestIEsValue struct {
	Present       int
	RICrequestID  *RICrequestID  `aper:"valueExt,referenceFieldValue:29"`
	RANfunctionID *RANfunctionID `aper:"referenceFieldValue:5"`
}

type RICsubscriptionDeleteResponse struct {
	ProtocolIEs ProtocolIEContainerRICsubscriptionDeleteResponseIEs
}

type ProtocolIEContainerRICsubscriptionDeleteResponseIEs struct {
	List []RICsubscriptionDeleteResponseIEs `aper:"sizeLB:0,sizeUB:65535"`
}

type RICsubscriptionDeleteResponseIEs struct {
	Id          ProtocolIEID
	Criticality Criticality
	Value       RICsubscriptionDeleteResponseIEsValue `aper:"openType,referenceFieldName:Id"`
}

const (
	RICsubscriptionDeleteResponseIEsPresentNothing int = iota /* No components present */
	RICsubscriptionDeleteResponseIEsPresentRICrequestID
	RICsubscriptionDeleteResponseIEsPresentRANfunctionID
)

type RICsubscriptionDeleteResponseIEsValue struct {
	Present       int
	RICrequestID  *RICrequestID  `aper:"valueExt,referenceFieldValue:29"`
	RANfunctionID *RANfunctionID `aper:"referenceFieldValue:5"`
}

type RICsubscriptionDeleteFailure struct {
	ProtocolIEs ProtocolIEContainerRICsubscriptionDeleteFailureIEs
}

type ProtocolIEContainerRICsubscriptionDeleteFailureIEs struct {
	List []RICsubscriptionDeleteFailureIEs `aper:"sizeLB:0,sizeUB:65535"`
}

type RICsubscriptionDeleteFailureIEs struct {
	Id          ProtocolIEID
	Criticality Criticality
	Value       RICsubscriptionDeleteFailureIEsValue `aper:"openType,referenceFieldName:Id"`
}

const (
	RICsubscriptionDeleteFailureIEsPresentNothing int = iota /* No components present */
	RICsubscriptionDeleteFailureIEsPresentRICrequestID
	RICsubscriptionDeleteFailureIEsPresentRANfunctionID
	RICsubscriptionDeleteFailureIEsPresentCause
)

type RICsubscriptionDeleteFailureIEsValue struct {
	Present       int
	RICrequestID  *RICrequestID  `aper:"valueExt,referenceFieldValue:29"`
	RANfunctionID *RANfunctionID `aper:"referenceFieldValue:5"`
	Cause         *Cause         `aper:"valueExt,referenceFieldValue:1,valueLB:0,valueUB:4"`
}

type RICindication struct {
	ProtocolIEs ProtocolIEContainerRICindicationIEs
}

type ProtocolIEContainerRICindicationIEs struct {
	List []RICindicationIEs `aper:"sizeLB:0,sizeUB:65535"`
}

type RICindicationIEs struct {
	Id          ProtocolIEID
	Criticality Criticality
	Value       RICindicationIEsValue `aper:"openType,referenceFieldName:Id"`
}

const (
	RICindicationIEsPresentNothing int = iota /* No components present */
	RICindicationIEsPresentRICrequestID
	RICindicationIEsPresentRANfunctionID
	RICindicationIEsPresentRICactionID
	RICindicationIEsPresentRICindicationSN
	RICindicationIEsPresentRICindicationType
	RICindicationIEsPresentRICindicationHeader
	RICindicationIEsPresentRICindicationMessage
	RICindicationIEsPresentRICcallProcessID
)

type RICindicationIEsValue struct {
	Present              int
	RICrequestID         *RICrequestID         `aper:"valueExt,referenceFieldValue:29"`
	RANfunctionID        *RANfunctionID        `aper:"referenceFieldValue:5"`
	RICactionID          *RICactionID          `aper:"referenceFieldValue:15"`
	RICindicationSN      *RICindicationSN      `aper:"referenceFieldValue:27"`
	RICindicationType    *RICindicationType    `aper:"referenceFieldValue:28"`
	RICindicationHeader  *RICindicationHeader  `aper:"referenceFieldValue:25"`
	RICindicationMessage *RICindicationMessage `aper:"referenceFieldValue:26"`
	RICcallProcessID     *RICcallProcessID     `aper:"referenceFieldValue:20"`
}

type RICcontrolRequest struct {
	ProtocolIEs ProtocolIEContainerRICcontrolRequestIEs
}

type ProtocolIEContainerRICcontrolRequestIEs struct {
	List []RICcontrolRequestIEs `aper:"sizeLB:0,sizeUB:65535"`
}

type RICcontrolRequestIEs struct {
	Id          ProtocolIEID
	Criticality Criticality
	Value       RICcontrolRequestIEsValue `aper:"openType,referenceFieldName:Id"`
}

const (
	RICcontrolRequestIEsPresentNothing int = iota /* No components present */
	RICcontrolRequestIEsPresentRICrequestID
	RICcontrolRequestIEsPresentRANfunctionID
	RICcontrolRequestIEsPresentRICcallProcessID
	RICcontrolRequestIEsPresentRICcontrolHeader
	RICcontrolRequestIEsPresentRICcontrolMessage
	RICcontrolRequestIEsPresentRICcontrolAckRequest
)

type RICcontrolRequestIEsValue struct {
	Present              int
	RICrequestID         *RICrequestID         `aper:"valueExt,referenceFieldValue:29"`
	RANfunctionID        *RANfunctionID        `aper:"referenceFieldValue:5"`
	RICcallProcessID     *RICcallProcessID     `aper:"referenceFieldValue:20"`
	RICcontrolHeader     *RICcontrolHeader     `aper:"referenceFieldValue:22"`
	RICcontrolMessage    *RICcontrolMessage    `aper:"referenceFieldValue:23"`
	RICcontrolAckRequest *RICcontrolAckRequest `aper:"referenceFieldValue:21"`
}

type RICcontrolAcknowledge struct {
	ProtocolIEs ProtocolIEContainerRICcontrolAcknowledgeIEs
}

type ProtocolIEContainerRICcontrolAcknowledgeIEs struct {
	List []RICcontrolAcknowledgeIEs `aper:"sizeLB:0,sizeUB:65535"`
}

type RICcontrolAcknowledgeIEs struct {
	Id          ProtocolIEID
	Criticality Criticality
	Value       RICcontrolAcknowledgeIEsValue `aper:"openType,referenceFieldName:Id"`
}

const (
	RICcontrolAcknowledgeIEsPresentNothing int = iota /* No components present */
	RICcontrolAcknowledgeIEsPresentRICrequestID
	RICcontrolAcknowledgeIEsPresentRANfunctionID
	RICcontrolAcknowledgeIEsPresentRICcallProcessID
	RICcontrolAcknowledgeIEsPresentRICcontrolStatus
	RICcontrolAcknowledgeIEsPresentRICcontrolOutcome
)

type RICcontrolAcknowledgeIEsValue struct {
	Present           int
	RICrequestID      *RICrequestID      `aper:"valueExt,referenceFieldValue:29"`
	RANfunctionID     *RANfunctionID     `aper:"referenceFieldValue:5"`
	RICcallProcessID  *RICcallProcessID  `aper:"referenceFieldValue:20"`
	RICcontrolStatus  *RICcontrolStatus  `aper:"referenceFieldValue:24"`
	RICcontrolOutcome *RICcontrolOutcome `aper:"referenceFieldValue:32"`
}

type RICcontrolFailure struct {
	ProtocolIEs ProtocolIEContainerRICcontrolFailureIEs
}

type ProtocolIEContainerRICcontrolFailureIEs struct {
	List []RICcontrolFailureIEs `aper:"sizeLB:0,sizeUB:65535"`
}

type RICcontrolFailureIEs struct {
	Id          ProtocolIEID
	Criticality Criticality
	Value       RICcontrolFailureIEsValue `aper:"openType,referenceFieldName:Id"`
}

const (
	RICcontrolFailureIEsPresentNothing int = iota /* No components present */
	RICcontrolFailureIEsPresentRICrequestID
	RICcontrolFailureIEsPresentRANfunctionID
	RICcontrolFailureIEsPresentRICcallProcessID
	RICcontrolFailureIEsPresentCause
	RICcontrolFailureIEsPresentRICcontrolOutcome
)

type RICcontrolFailureIEsValue struct {
	Present           int
	RICrequestID      *RICrequestID      `aper:"valueExt,referenceFieldValue:29"`
	RANfunctionID     *RANfunctionID     `aper:"referenceFieldValue:5"`
	RICcallProcessID  *RICcallProcessID  `aper:"referenceFieldValue:20"`
	Cause             *Cause             `aper:"valueExt,referenceFieldValue:1,valueLB:0,valueUB:4"`
	RICcontrolOutcome *RICcontrolOutcome `aper:"referenceFieldValue:32"`
}
