package e2apType

import "github.com/free5gc/aper"

// E2AP v01.01, clause 9.3.7 constants

const (
	MaxProtocolIEs   int64 = 65535
	MaxofRICactionID int64 = 16
)

const (
	ProcedureCodeE2setup               int64 = 1
	ProcedureCodeErrorIndication       int64 = 2
	ProcedureCodeReset                 int64 = 3
	ProcedureCodeRICcontrol            int64 = 4
	ProcedureCodeRICindication         int64 = 5
	ProcedureCodeRICserviceQuery       int64 = 6
	ProcedureCodeRICserviceUpdate      int64 = 7
	ProcedureCodeRICsubscription       int64 = 8
	ProcedureCodeRICsubscriptionDelete int64 = 9
)

const (
	ProtocolIEIDCause                    int64 = 1
	ProtocolIEIDCriticalityDiagnostics   int64 = 2
	ProtocolIEIDGlobalE2nodeID           int64 = 3
	ProtocolIEIDGlobalRICID              int64 = 4
	ProtocolIEIDRANfunctionID            int64 = 5
	ProtocolIEIDRANfunctionIDItem        int64 = 6
	ProtocolIEIDRANfunctionIEcauseItem   int64 = 7
	ProtocolIEIDRANfunctionItem          int64 = 8
	ProtocolIEIDRANfunctionsAccepted     int64 = 9
	ProtocolIEIDRANfunctionsAdded        int64 = 10
	ProtocolIEIDRANfunctionsDeleted      int64 = 11
	ProtocolIEIDRANfunctionsModified     int64 = 12
	ProtocolIEIDRANfunctionsRejected     int64 = 13
	ProtocolIEIDRICactionAdmittedItem    int64 = 14
	ProtocolIEIDRICactionID              int64 = 15
	ProtocolIEIDRICactionNotAdmittedItem int64 = 16
	ProtocolIEIDRICactionsAdmitted       int64 = 17
	ProtocolIEIDRICactionsNotAdmitted    int64 = 18
	ProtocolIEIDRICactionToBeSetupItem   int64 = 19
	ProtocolIEIDRICcallProcessID         int64 = 20
	ProtocolIEIDRICcontrolAckRequest     int64 = 21
	ProtocolIEIDRICcontrolHeader         int64 = 22
	ProtocolIEIDRICcontrolMessage        int64 = 23
	ProtocolIEIDRICcontrolStatus         int64 = 24
	ProtocolIEIDRICindicationHeader      int64 = 25
	ProtocolIEIDRICindicationMessage     int64 = 26
	ProtocolIEIDRICindicationSN          int64 = 27
	ProtocolIEIDRICindicationType        int64 = 28
	ProtocolIEIDRICrequestID             int64 = 29
	ProtocolIEIDRICsubscriptionDetails   int64 = 30
	ProtocolIEIDTimeToWait               int64 = 31
	ProtocolIEIDRICcontrolOutcome        int64 = 32
)

const (
	CriticalityPresentReject aper.Enumerated = 0
	CriticalityPresentIgnore aper.Enumerated = 1
	CriticalityPresentNotify aper.Enumerated = 2
)

const (
	RICactionTypePresentReport aper.Enumerated = 0
	RICactionTypePresentInsert aper.Enumerated = 1
	RICactionTypePresentPolicy aper.Enumerated = 2
)

const (
	RICsubsequentActionTypePresentContinue aper.Enumerated = 0
	RICsubsequentActionTypePresentWait     aper.Enumerated = 1
)

const (
	RICtimeToWaitPresentZero   aper.Enumerated = 0
	RICtimeToWaitPresentW1ms   aper.Enumerated = 1
	RICtimeToWaitPresentW2ms   aper.Enumerated = 2
	RICtimeToWaitPresentW5ms   aper.Enumerated = 3
	RICtimeToWaitPresentW10ms  aper.Enumerated = 4
	RICtimeToWaitPresentW20ms  aper.Enumerated = 5
	RICtimeToWaitPresentW30ms  aper.Enumerated = 6
	RICtimeToWaitPresentW40ms  aper.Enumerated = 7
	RICtimeToWaitPresentW50ms  aper.Enumerated = 8
	RICtimeToWaitPresentW100ms aper.Enumerated = 9
	RICtimeToWaitPresentW200ms aper.Enumerated = 10
	RICtimeToWaitPresentW500ms aper.Enumerated = 11
	RICtimeToWaitPresentW1s    aper.Enumerated = 12
	RICtimeToWaitPresentW2s    aper.Enumerated = 13
	RICtimeToWaitPresentW5s    aper.Enumerated = 14
	RICtimeToWaitPresentW10s   aper.Enumerated = 15
	RICtimeToWaitPresentW20s   aper.Enumerated = 16
	RICtimeToWaitPresentW60s   aper.Enumerated = 17
)

const (
	RICindicationTypePresentReport aper.Enumerated = 0
	RICindicationTypePresentInsert aper.Enumerated = 1
)

const (
	RICcontrolAckRequestPresentNoAck aper.Enumerated = 0
	RICcontrolAckRequestPresentAck   aper.Enumerated = 1
	RICcontrolAckRequestPresentNAck  aper.Enumerated = 2
)

const (
	RICcontrolStatusPresentSuccess  aper.Enumerated = 0
	RICcontrolStatusPresentRejected aper.Enumerated = 1
	RICcontrolStatusPresentFailed   aper.Enumerated = 2
)

const (
	CauseRICPresentRanFunctionIdInvalid                       aper.Enumerated = 0
	CauseRICPresentActionNotSupported                         aper.Enumerated = 1
	CauseRICPresentExcessiveActions                           aper.Enumerated = 2
	CauseRICPresentDuplicateAction                            aper.Enumerated = 3
	CauseRICPresentDuplicateEvent                             aper.Enumerated = 4
	CauseRICPresentFunctionResourceLimit                      aper.Enumerated = 5
	CauseRICPresentRequestIdUnknown                           aper.Enumerated = 6
	CauseRICPresentInconsistentActionSubsequentActionSequence aper.Enumerated = 7
	CauseRICPresentControlMessageInvalid                      aper.Enumerated = 8
	CauseRICPresentCallProcessIdInvalid                       aper.Enumerated = 9
	CauseRICPresentUnspecified                                aper.Enumerated = 10
)

const (
	CauseRICservicePresentFunctionNotRequired aper.Enumerated = 0
	CauseRICservicePresentExcessiveFunctions  aper.Enumerated = 1
	CauseRICservicePresentRicResourceLimit    aper.Enumerated = 2
)

const (
	CauseTransportPresentUnspecified                  aper.Enumerated = 0
	CauseTransportPresentTransportResourceUnavailable aper.Enumerated = 1
)

const (
	CauseProtocolPresentTransferSyntaxError                          aper.Enumerated = 0
	CauseProtocolPresentAbstractSyntaxErrorReject                    aper.Enumerated = 1
	CauseProtocolPresentAbstractSyntaxErrorIgnoreAndNotify           aper.Enumerated = 2
	CauseProtocolPresentMessageNotCompatibleWithReceiverState        aper.Enumerated = 3
	CauseProtocolPresentSemanticError                                aper.Enumerated = 4
	CauseProtocolPresentAbstractSyntaxErrorFalselyConstructedMessage aper.Enumerated = 5
	CauseProtocolPresentUnspecified                                  aper.Enumerated = 6
)

const (
	CauseMiscPresentControlProcessingOverload aper.Enumerated = 0
	CauseMiscPresentHardwareFailure           aper.Enumerated = 1
	CauseMiscPresentOmIntervention            aper.Enumerated = 2
	CauseMiscPresentUnspecified               aper.Enumerated = 3
)
