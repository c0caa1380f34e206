package message

import (
	"fmt"

	"github.com/free5gc/aper"
	"github.com/free5gc/e2ap/pkg/e2apType"
	"github.com/free5gc/e2ap/pkg/ric"
)

func checkRange(field string, value, lb, ub int64) error {
	if value < lb || value > ub {
		return &ric.EncodeError{
			Field: field,
			Err:   fmt.Errorf("value %d out of range (%d..%d)", value, lb, ub),
		}
	}
	return nil
}

func buildRICrequestID(requestID ric.RequestID) (*e2apType.RICrequestID, error) {
	if err := checkRange("RICrequestID.ricRequestorID", requestID.RequestorID, 0, 65535); err != nil {
		return nil, err
	}
	if err := checkRange("RICrequestID.ricInstanceID", requestID.InstanceID, 0, 65535); err != nil {
		return nil, err
	}
	return &e2apType.RICrequestID{
		RICrequestorID: requestID.RequestorID,
		RICinstanceID:  requestID.InstanceID,
	}, nil
}

func buildRANfunctionID(ranFunctionID int64) (*e2apType.RANfunctionID, error) {
	if err := checkRange("RANfunctionID", ranFunctionID, 0, 4095); err != nil {
		return nil, err
	}
	return &e2apType.RANfunctionID{Value: ranFunctionID}, nil
}

// BuildCause builds the Cause CHOICE for the given category and code.
func BuildCause(cause ric.Cause) (e2apType.Cause, error) {
	var c e2apType.Cause
	switch cause.Type {
	case ric.CauseTypeRICRequest:
		if err := checkRange("Cause.ricRequest", cause.ID, 0, 10); err != nil {
			return c, err
		}
		c.Present = e2apType.CausePresentRicRequest
		c.RicRequest = &e2apType.CauseRIC{Value: aper.Enumerated(cause.ID)}
	case ric.CauseTypeRICService:
		if err := checkRange("Cause.ricService", cause.ID, 0, 2); err != nil {
			return c, err
		}
		c.Present = e2apType.CausePresentRicService
		c.RicService = &e2apType.CauseRICservice{Value: aper.Enumerated(cause.ID)}
	case ric.CauseTypeTransport:
		if err := checkRange("Cause.transport", cause.ID, 0, 1); err != nil {
			return c, err
		}
		c.Present = e2apType.CausePresentTransport
		c.Transport = &e2apType.CauseTransport{Value: aper.Enumerated(cause.ID)}
	case ric.CauseTypeProtocol:
		if err := checkRange("Cause.protocol", cause.ID, 0, 6); err != nil {
			return c, err
		}
		c.Present = e2apType.CausePresentProtocol
		c.Protocol = &e2apType.CauseProtocol{Value: aper.Enumerated(cause.ID)}
	case ric.CauseTypeMisc:
		if err := checkRange("Cause.misc", cause.ID, 0, 3); err != nil {
			return c, err
		}
		c.Present = e2apType.CausePresentMisc
		c.Misc = &e2apType.CauseMisc{Value: aper.Enumerated(cause.ID)}
	default:
		return c, &ric.EncodeError{Field: "Cause", Err: fmt.Errorf("unknown cause type %d", cause.Type)}
	}
	return c, nil
}

func buildRICactionNotAdmittedList(limits ric.Limits, items []ric.ActionNotAdmitted) (
	*e2apType.RICactionNotAdmittedList, error,
) {
	if err := limits.CheckActions(len(items)); err != nil {
		return nil, err
	}
	list := new(e2apType.RICactionNotAdmittedList)
	list.List = make([]e2apType.RICactionNotAdmittedItemIEs, 0, len(items))
	for _, notAdmitted := range items {
		if err := checkRange("RICaction-NotAdmitted-Item.ricActionID", notAdmitted.ActionID, 0, 255); err != nil {
			return nil, err
		}
		cause, err := BuildCause(notAdmitted.Cause)
		if err != nil {
			return nil, err
		}
		item := e2apType.RICactionNotAdmittedItemIEs{}
		item.Id.Value = e2apType.ProtocolIEIDRICactionNotAdmittedItem
		item.Criticality.Value = e2apType.CriticalityPresentReject
		item.Value.Present = e2apType.RICactionNotAdmittedItemIEsPresentRICactionNotAdmittedItem
		item.Value.RICactionNotAdmittedItem = &e2apType.RICactionNotAdmittedItem{
			RICactionID: e2apType.RICactionID{Value: notAdmitted.ActionID},
			Cause:       cause,
		}
		list.List = append(list.List, item)
	}
	return list, nil
}
