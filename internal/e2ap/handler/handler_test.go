package handler

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/free5gc/e2ap/internal/e2ap/message"
	"github.com/free5gc/e2ap/pkg/e2ap"
	"github.com/free5gc/e2ap/pkg/e2apType"
	"github.com/free5gc/e2ap/pkg/ric"
)

// decode takes a builder's result and returns the decoded tree, so that it
// can wrap the builder call directly: decode(t)(message.BuildX(...)).
func decode(t *testing.T) func([]byte, error) *e2apType.E2APPDU {
	return func(b []byte, err error) *e2apType.E2APPDU {
		t.Helper()
		require.NoError(t, err)
		pdu, err := e2ap.Decoder(b)
		require.NoError(t, err)
		return pdu
	}
}

func TestHandleRICSubscriptionRequestRoundTrip(t *testing.T) {
	limits := ric.DefaultLimits()

	for n := 1; n <= ric.DefaultMaxActions; n++ {
		t.Run(fmt.Sprintf("actions=%d", n), func(t *testing.T) {
			req := &ric.SubscriptionRequest{
				RequestID:              ric.RequestID{RequestorID: 1001, InstanceID: int64(n)},
				RANFunctionID:          4095,
				EventTriggerDefinition: []byte{0x10, 0x20, 0x30},
				Actions:                make([]ric.Action, 0, n),
			}
			for i := 0; i < n; i++ {
				action := ric.Action{
					ActionID:   int64(255 - i),
					ActionType: ric.ActionType(i % 3),
				}
				if i%2 == 1 {
					action.Definition = []byte{byte(i), byte(i + 1)}
				}
				if i%4 == 0 {
					action.SubsequentAction = &ric.SubsequentAction{
						Type:       ric.SubsequentActionType(i % 2),
						TimeToWait: int64(i % 18),
					}
				}
				req.Actions = append(req.Actions, action)
			}

			pdu := decode(t)(message.BuildRICSubscriptionRequest(limits, req))
			got, err := HandleRICSubscriptionRequest(limits, pdu)
			require.NoError(t, err)
			require.Equal(t, req, got)
		})
	}
}

func TestHandleRICSubscriptionResponse(t *testing.T) {
	limits := ric.DefaultLimits()

	for k := 1; k <= 4; k++ {
		for m := 0; m <= 3; m++ {
			t.Run(fmt.Sprintf("admitted=%d,notAdmitted=%d", k, m), func(t *testing.T) {
				resp := &ric.SubscriptionResponse{
					RequestID:     ric.RequestID{RequestorID: 10, InstanceID: 20},
					RANFunctionID: 30,
				}
				for i := 0; i < k; i++ {
					resp.ActionAdmittedList = append(resp.ActionAdmittedList, ric.ActionAdmitted{ActionID: int64(10 - i)})
				}
				for i := 0; i < m; i++ {
					resp.ActionNotAdmitted = append(resp.ActionNotAdmitted, ric.ActionNotAdmitted{
						ActionID: int64(100 + i),
						Cause:    ric.Cause{Type: ric.CauseTypeRICRequest, ID: int64(i)},
					})
				}
				if m == 0 {
					resp.ActionNotAdmitted = nil
				}

				pdu := decode(t)(message.BuildRICSubscriptionResponse(limits, resp))
				got, err := HandleRICSubscriptionResponse(limits, pdu)
				require.NoError(t, err)
				require.Len(t, got.ActionAdmittedList, k)
				require.Len(t, got.ActionNotAdmitted, m)
				require.Equal(t, resp.RequestID, got.RequestID)
				require.Equal(t, resp.RANFunctionID, got.RANFunctionID)
				require.Equal(t, resp.ActionAdmittedList, got.ActionAdmittedList)
				for i := range resp.ActionNotAdmitted {
					require.Equal(t, resp.ActionNotAdmitted[i], got.ActionNotAdmitted[i])
				}
			})
		}
	}
}

func TestHandleRICSubscriptionResponseCauses(t *testing.T) {
	limits := ric.DefaultLimits()
	causes := []ric.Cause{
		{Type: ric.CauseTypeRICRequest, ID: 8},
		{Type: ric.CauseTypeRICService, ID: 1},
		{Type: ric.CauseTypeTransport, ID: 1},
		{Type: ric.CauseTypeProtocol, ID: 5},
		{Type: ric.CauseTypeMisc, ID: 2},
	}

	for _, cause := range causes {
		t.Run(cause.Type.String(), func(t *testing.T) {
			resp := &ric.SubscriptionResponse{
				ActionAdmittedList: []ric.ActionAdmitted{{ActionID: 1}},
				ActionNotAdmitted:  []ric.ActionNotAdmitted{{ActionID: 2, Cause: cause}},
			}

			pdu := decode(t)(message.BuildRICSubscriptionResponse(limits, resp))
			got, err := HandleRICSubscriptionResponse(limits, pdu)
			require.NoError(t, err)
			require.Len(t, got.ActionNotAdmitted, 1)
			require.Equal(t, cause.Type, got.ActionNotAdmitted[0].Cause.Type)
			require.Equal(t, cause.ID, got.ActionNotAdmitted[0].Cause.ID)
		})
	}
}

func TestHandleRICSubscriptionResponseSkipsUnknownIE(t *testing.T) {
	limits := ric.DefaultLimits()
	pdu, err := message.BuildRICSubscriptionResponsePDU(limits, &ric.SubscriptionResponse{
		RequestID:          ric.RequestID{RequestorID: 1, InstanceID: 2},
		RANFunctionID:      3,
		ActionAdmittedList: []ric.ActionAdmitted{{ActionID: 4}},
	})
	require.NoError(t, err)

	ies := &pdu.SuccessfulOutcome.Value.RICsubscriptionResponse.ProtocolIEs
	unknown := e2apType.RICsubscriptionResponseIEs{}
	unknown.Id.Value = 999
	unknown.Criticality.Value = e2apType.CriticalityPresentIgnore
	ies.List = append([]e2apType.RICsubscriptionResponseIEs{unknown}, ies.List...)

	got, err := HandleRICSubscriptionResponse(limits, pdu)
	require.NoError(t, err)
	require.Equal(t, ric.RequestID{RequestorID: 1, InstanceID: 2}, got.RequestID)
	require.Equal(t, int64(3), got.RANFunctionID)
	require.Equal(t, []ric.ActionAdmitted{{ActionID: 4}}, got.ActionAdmittedList)
}

func TestHandleRICSubscriptionResponseRejects(t *testing.T) {
	limits := ric.DefaultLimits()
	resp := &ric.SubscriptionResponse{
		ActionAdmittedList: []ric.ActionAdmitted{{ActionID: 1}, {ActionID: 2}, {ActionID: 3}, {ActionID: 4}},
	}
	pdu, err := message.BuildRICSubscriptionResponsePDU(limits, resp)
	require.NoError(t, err)

	t.Run("list above configured bound", func(t *testing.T) {
		got, err := HandleRICSubscriptionResponse(ric.Limits{MaxActions: 3, MaxOctetStringSize: 16}, pdu)
		require.ErrorIs(t, err, ric.ErrTooManyActions)
		require.Nil(t, got)
	})

	t.Run("nil message", func(t *testing.T) {
		got, err := HandleRICSubscriptionResponse(limits, nil)
		require.ErrorIs(t, err, ric.ErrProcedureMismatch)
		require.Nil(t, got)
	})

	t.Run("indication", func(t *testing.T) {
		indication, err := message.BuildRICIndicationPDU(limits, &ric.Indication{})
		require.NoError(t, err)
		got, err := HandleRICSubscriptionResponse(limits, indication)
		require.ErrorIs(t, err, ric.ErrProcedureMismatch)
		require.Nil(t, got)
	})

	t.Run("missing request id", func(t *testing.T) {
		ies := &pdu.SuccessfulOutcome.Value.RICsubscriptionResponse.ProtocolIEs
		ies.List = ies.List[1:]
		got, err := HandleRICSubscriptionResponse(limits, pdu)
		require.ErrorIs(t, err, ric.ErrMissingIE)
		require.Nil(t, got)
	})
}

func TestHandleRICSubscriptionResponseMissingMandatoryIE(t *testing.T) {
	limits := ric.DefaultLimits()
	resp := &ric.SubscriptionResponse{
		RequestID:          ric.RequestID{RequestorID: 1, InstanceID: 2},
		RANFunctionID:      3,
		ActionAdmittedList: []ric.ActionAdmitted{{ActionID: 1}},
		ActionNotAdmitted: []ric.ActionNotAdmitted{
			{ActionID: 2, Cause: ric.Cause{Type: ric.CauseTypeMisc, ID: 1}},
		},
	}

	testCases := []struct {
		name    string
		id      int64
		missing bool
	}{
		{name: "RICrequestID", id: e2apType.ProtocolIEIDRICrequestID, missing: true},
		{name: "RANfunctionID", id: e2apType.ProtocolIEIDRANfunctionID, missing: true},
		{name: "RICactions-Admitted", id: e2apType.ProtocolIEIDRICactionsAdmitted, missing: true},
		{name: "RICactions-NotAdmitted", id: e2apType.ProtocolIEIDRICactionsNotAdmitted},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			pdu, err := message.BuildRICSubscriptionResponsePDU(limits, resp)
			require.NoError(t, err)
			ies := &pdu.SuccessfulOutcome.Value.RICsubscriptionResponse.ProtocolIEs
			kept := ies.List[:0]
			for _, ie := range ies.List {
				if ie.Id.Value != tc.id {
					kept = append(kept, ie)
				}
			}
			ies.List = kept

			got, err := HandleRICSubscriptionResponse(limits, decode(t)(e2ap.Encoder(*pdu)))
			if tc.missing {
				require.ErrorIs(t, err, ric.ErrMissingIE)
				require.Nil(t, got)
				return
			}
			require.NoError(t, err)
			require.Equal(t, resp.ActionAdmittedList, got.ActionAdmittedList)
			require.Empty(t, got.ActionNotAdmitted)
		})
	}
}

func TestHandleRICSubscriptionFailure(t *testing.T) {
	limits := ric.DefaultLimits()
	failure := &ric.SubscriptionFailure{
		RequestID:     ric.RequestID{RequestorID: 9, InstanceID: 8},
		RANFunctionID: 7,
		ActionNotAdmitted: []ric.ActionNotAdmitted{
			{ActionID: 1, Cause: ric.Cause{Type: ric.CauseTypeRICRequest, ID: 1}},
			{ActionID: 2, Cause: ric.Cause{Type: ric.CauseTypeTransport, ID: 0}},
		},
	}

	pdu := decode(t)(message.BuildRICSubscriptionFailure(limits, failure))
	got, err := HandleRICSubscriptionFailure(limits, pdu)
	require.NoError(t, err)
	require.Equal(t, failure, got)

	_, err = HandleRICSubscriptionResponse(limits, pdu)
	require.ErrorIs(t, err, ric.ErrProcedureMismatch)
}

func TestHandleRICSubscriptionFailureMissingNotAdmittedList(t *testing.T) {
	limits := ric.DefaultLimits()
	b, err := message.BuildRICSubscriptionFailure(limits, &ric.SubscriptionFailure{
		RequestID:         ric.RequestID{RequestorID: 1},
		ActionNotAdmitted: []ric.ActionNotAdmitted{{ActionID: 1, Cause: ric.Cause{Type: ric.CauseTypeMisc}}},
	})
	require.NoError(t, err)
	pdu, err := e2ap.Decoder(b)
	require.NoError(t, err)

	ies := &pdu.UnsuccessfulOutcome.Value.RICsubscriptionFailure.ProtocolIEs
	kept := ies.List[:0]
	for _, ie := range ies.List {
		if ie.Id.Value != e2apType.ProtocolIEIDRICactionsNotAdmitted {
			kept = append(kept, ie)
		}
	}
	ies.List = kept

	got, err := HandleRICSubscriptionFailure(limits, decode(t)(e2ap.Encoder(*pdu)))
	require.ErrorIs(t, err, ric.ErrMissingIE)
	require.Nil(t, got)
}

func TestHandleRICSubscriptionDelete(t *testing.T) {
	requestID := ric.RequestID{RequestorID: 65535, InstanceID: 0}

	pdu := decode(t)(message.BuildRICSubscriptionDeleteRequest(requestID, 12))
	req, err := HandleRICSubscriptionDeleteRequest(pdu)
	require.NoError(t, err)
	require.Equal(t, &ric.SubscriptionDeleteRequest{RequestID: requestID, RANFunctionID: 12}, req)

	pdu = decode(t)(message.BuildRICSubscriptionDeleteResponse(requestID, 12))
	resp, err := HandleRICSubscriptionDeleteResponse(pdu)
	require.NoError(t, err)
	require.Equal(t, &ric.SubscriptionDeleteResponse{RequestID: requestID, RANFunctionID: 12}, resp)

	failure := &ric.SubscriptionDeleteFailure{
		RequestID:     requestID,
		RANFunctionID: 12,
		Cause:         ric.Cause{Type: ric.CauseTypeRICService, ID: 2},
	}
	pdu = decode(t)(message.BuildRICSubscriptionDeleteFailure(failure))
	gotFailure, err := HandleRICSubscriptionDeleteFailure(pdu)
	require.NoError(t, err)
	require.Equal(t, failure, gotFailure)
}

func TestToCause(t *testing.T) {
	_, err := ToCause(nil)
	require.ErrorIs(t, err, ric.ErrMissingIE)

	_, err = ToCause(&e2apType.Cause{Present: e2apType.CausePresentMisc})
	require.ErrorIs(t, err, ric.ErrMissingIE)

	_, err = ToCause(&e2apType.Cause{Present: 42})
	require.Error(t, err)

	cause, err := ToCause(&e2apType.Cause{
		Present:  e2apType.CausePresentProtocol,
		Protocol: &e2apType.CauseProtocol{Value: 3},
	})
	require.NoError(t, err)
	require.Equal(t, ric.Cause{Type: ric.CauseTypeProtocol, ID: 3}, cause)
}
