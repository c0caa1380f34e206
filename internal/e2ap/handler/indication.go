package handler

import (
	"github.com/free5gc/e2ap/internal/logger"
	"github.com/free5gc/e2ap/pkg/e2apType"
	"github.com/free5gc/e2ap/pkg/ric"
)

// HandleRICIndication extracts a RIC Indication. A nil PDU or any other
// message is rejected before the tree is touched. RICindicationSN and
// RICcallProcessID are optional; every other IE is mandatory. When a buffer
// copy fails or a mandatory IE is missing the partially built record is
// released and no result is returned.
func HandleRICIndication(limits ric.Limits, message *e2apType.E2APPDU) (*ric.Indication, error) {
	logger.E2apLog.Infoln("Handle RIC Indication")

	value, err := getInitiatingMessage(message, e2apType.ProcedureCodeRICindication,
		e2apType.InitiatingMessagePresentRICindication)
	if err != nil {
		return nil, err
	}
	indication := value.RICindication
	if indication == nil {
		return nil, missingIE("RICindication")
	}

	result := new(ric.Indication)
	fail := func(err error) (*ric.Indication, error) {
		result.Release()
		return nil, err
	}

	var requestIDSeen, ranFunctionIDSeen, actionIDSeen, indicationTypeSeen bool
	var headerSeen, messageSeen bool
	for _, ie := range indication.ProtocolIEs.List {
		switch ie.Id.Value {
		case e2apType.ProtocolIEIDRICrequestID:
			logger.E2apLog.Traceln("[E2AP] Decode IE RICrequestID")
			if ie.Value.RICrequestID == nil {
				return fail(missingIE("RICrequestID"))
			}
			result.RequestID = toRequestID(ie.Value.RICrequestID)
			requestIDSeen = true
		case e2apType.ProtocolIEIDRANfunctionID:
			logger.E2apLog.Traceln("[E2AP] Decode IE RANfunctionID")
			if ie.Value.RANfunctionID == nil {
				return fail(missingIE("RANfunctionID"))
			}
			result.RANFunctionID = ie.Value.RANfunctionID.Value
			ranFunctionIDSeen = true
		case e2apType.ProtocolIEIDRICactionID:
			logger.E2apLog.Traceln("[E2AP] Decode IE RICactionID")
			if ie.Value.RICactionID == nil {
				return fail(missingIE("RICactionID"))
			}
			result.ActionID = ie.Value.RICactionID.Value
			actionIDSeen = true
		case e2apType.ProtocolIEIDRICindicationSN:
			logger.E2apLog.Traceln("[E2AP] Decode IE RICindicationSN")
			if ie.Value.RICindicationSN != nil {
				result.IndicationSN = ie.Value.RICindicationSN.Value
			}
		case e2apType.ProtocolIEIDRICindicationType:
			logger.E2apLog.Traceln("[E2AP] Decode IE RICindicationType")
			if ie.Value.RICindicationType == nil {
				return fail(missingIE("RICindicationType"))
			}
			result.IndicationType = ric.IndicationType(ie.Value.RICindicationType.Value)
			indicationTypeSeen = true
		case e2apType.ProtocolIEIDRICindicationHeader:
			logger.E2apLog.Traceln("[E2AP] Decode IE RICindicationHeader")
			if ie.Value.RICindicationHeader == nil {
				return fail(missingIE("RICindicationHeader"))
			}
			if result.Header, err = copyOctets(limits, "RICindicationHeader",
				ie.Value.RICindicationHeader.Value); err != nil {
				return fail(err)
			}
			headerSeen = true
		case e2apType.ProtocolIEIDRICindicationMessage:
			logger.E2apLog.Traceln("[E2AP] Decode IE RICindicationMessage")
			if ie.Value.RICindicationMessage == nil {
				return fail(missingIE("RICindicationMessage"))
			}
			if result.Message, err = copyOctets(limits, "RICindicationMessage",
				ie.Value.RICindicationMessage.Value); err != nil {
				return fail(err)
			}
			messageSeen = true
		case e2apType.ProtocolIEIDRICcallProcessID:
			logger.E2apLog.Traceln("[E2AP] Decode IE RICcallProcessID")
			if ie.Value.RICcallProcessID == nil {
				continue
			}
			if result.CallProcessID, err = copyOctets(limits, "RICcallProcessID",
				ie.Value.RICcallProcessID.Value); err != nil {
				return fail(err)
			}
		default:
			logger.E2apLog.Tracef("[E2AP] Skip unknown IE %d", ie.Id.Value)
		}
	}

	if !requestIDSeen {
		return fail(missingIE("RICrequestID"))
	}
	if !ranFunctionIDSeen {
		return fail(missingIE("RANfunctionID"))
	}
	if !actionIDSeen {
		return fail(missingIE("RICactionID"))
	}
	if !indicationTypeSeen {
		return fail(missingIE("RICindicationType"))
	}
	if !headerSeen {
		return fail(missingIE("RICindicationHeader"))
	}
	if !messageSeen {
		return fail(missingIE("RICindicationMessage"))
	}
	return result, nil
}
