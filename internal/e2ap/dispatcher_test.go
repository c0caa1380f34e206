package e2ap

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/free5gc/e2ap/internal/e2ap/message"
	"github.com/free5gc/e2ap/pkg/e2apType"
	"github.com/free5gc/e2ap/pkg/ric"
)

func TestDispatch(t *testing.T) {
	limits := ric.DefaultLimits()
	requestID := ric.RequestID{RequestorID: 1, InstanceID: 2}
	cause := ric.Cause{Type: ric.CauseTypeMisc, ID: 0}

	build := func(b []byte, err error) []byte {
		require.NoError(t, err)
		return b
	}

	testCases := []struct {
		name string
		code int64
		pdu  []byte
	}{
		{
			name: "RICsubscriptionRequest",
			code: e2apType.ProcedureCodeRICsubscription,
			pdu: build(message.BuildRICSubscriptionRequest(limits, &ric.SubscriptionRequest{
				RequestID: requestID,
				Actions:   []ric.Action{{ActionID: 1}},
			})),
		},
		{
			name: "RICsubscriptionResponse",
			code: e2apType.ProcedureCodeRICsubscription,
			pdu: build(message.BuildRICSubscriptionResponse(limits, &ric.SubscriptionResponse{
				RequestID:          requestID,
				ActionAdmittedList: []ric.ActionAdmitted{{ActionID: 1}},
			})),
		},
		{
			name: "RICsubscriptionFailure",
			code: e2apType.ProcedureCodeRICsubscription,
			pdu: build(message.BuildRICSubscriptionFailure(limits, &ric.SubscriptionFailure{
				RequestID:         requestID,
				ActionNotAdmitted: []ric.ActionNotAdmitted{{ActionID: 1, Cause: cause}},
			})),
		},
		{
			name: "RICsubscriptionDeleteRequest",
			code: e2apType.ProcedureCodeRICsubscriptionDelete,
			pdu:  build(message.BuildRICSubscriptionDeleteRequest(requestID, 1)),
		},
		{
			name: "RICsubscriptionDeleteResponse",
			code: e2apType.ProcedureCodeRICsubscriptionDelete,
			pdu:  build(message.BuildRICSubscriptionDeleteResponse(requestID, 1)),
		},
		{
			name: "RICsubscriptionDeleteFailure",
			code: e2apType.ProcedureCodeRICsubscriptionDelete,
			pdu: build(message.BuildRICSubscriptionDeleteFailure(&ric.SubscriptionDeleteFailure{
				RequestID: requestID,
				Cause:     cause,
			})),
		},
		{
			name: "RICindication",
			code: e2apType.ProcedureCodeRICindication,
			pdu: build(message.BuildRICIndication(limits, &ric.Indication{
				RequestID: requestID,
				Header:    []byte{0x01},
				Message:   []byte{0x02},
			})),
		},
		{
			name: "RICcontrolRequest",
			code: e2apType.ProcedureCodeRICcontrol,
			pdu: build(message.BuildRICControlRequest(limits, &ric.ControlRequest{
				RequestID:  requestID,
				Header:     []byte{0x01},
				Message:    []byte{0x02},
				AckRequest: ric.ControlAckRequestOmit,
			})),
		},
		{
			name: "RICcontrolAcknowledge",
			code: e2apType.ProcedureCodeRICcontrol,
			pdu: build(message.BuildRICControlAcknowledge(limits, &ric.ControlAcknowledge{
				RequestID: requestID,
			})),
		},
		{
			name: "RICcontrolFailure",
			code: e2apType.ProcedureCodeRICcontrol,
			pdu: build(message.BuildRICControlFailure(limits, &ric.ControlFailure{
				RequestID: requestID,
				Cause:     cause,
			})),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			msg, err := Dispatch(limits, tc.pdu)
			require.NoError(t, err)
			require.Equal(t, tc.name, msg.Name)
			require.Equal(t, tc.code, msg.ProcedureCode)
			require.NotNil(t, msg.Record)
		})
	}
}

func TestDispatchMalformed(t *testing.T) {
	var decodeErr *ric.DecodeError

	msg, err := Dispatch(ric.DefaultLimits(), nil)
	require.ErrorAs(t, err, &decodeErr)
	require.Nil(t, msg)

	msg, err = Dispatch(ric.DefaultLimits(), []byte{0x00})
	require.ErrorAs(t, err, &decodeErr)
	require.Nil(t, msg)
}
