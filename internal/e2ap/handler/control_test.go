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

func TestHandleRICControlRequestRoundTrip(t *testing.T) {
	limits := ric.DefaultLimits()
	testCases := []struct {
		name string
		req  *ric.ControlRequest
	}{
		{
			name: "all IEs",
			req: &ric.ControlRequest{
				RequestID:     ric.RequestID{RequestorID: 1, InstanceID: 2},
				RANFunctionID: 3,
				CallProcessID: []byte{0x01, 0x02, 0x03, 0x04},
				Header:        []byte{0x05},
				Message:       []byte{0x06, 0x07},
				AckRequest:    int64(2),
			},
		},
		{
			name: "optional IEs omitted",
			req: &ric.ControlRequest{
				RequestID:     ric.RequestID{RequestorID: 4, InstanceID: 5},
				RANFunctionID: 6,
				Header:        []byte{0x08},
				Message:       []byte{0x09},
				AckRequest:    ric.ControlAckRequestOmit,
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			pdu := decode(t)(message.BuildRICControlRequest(limits, tc.req))
			got, err := HandleRICControlRequest(limits, pdu)
			require.NoError(t, err)
			require.Equal(t, tc.req, got)
		})
	}
}

func TestHandleRICControlRequestMissingMandatoryIE(t *testing.T) {
	limits := ric.DefaultLimits()
	req := &ric.ControlRequest{
		RequestID:     ric.RequestID{RequestorID: 1, InstanceID: 2},
		RANFunctionID: 3,
		Header:        []byte{0x05},
		Message:       []byte{0x06},
		AckRequest:    1,
	}

	for _, id := range []int64{
		e2apType.ProtocolIEIDRICrequestID,
		e2apType.ProtocolIEIDRANfunctionID,
		e2apType.ProtocolIEIDRICcontrolHeader,
		e2apType.ProtocolIEIDRICcontrolMessage,
	} {
		t.Run(fmt.Sprintf("id=%d", id), func(t *testing.T) {
			pdu, err := message.BuildRICControlRequestPDU(limits, req)
			require.NoError(t, err)
			ies := &pdu.InitiatingMessage.Value.RICcontrolRequest.ProtocolIEs
			kept := ies.List[:0]
			for _, ie := range ies.List {
				if ie.Id.Value != id {
					kept = append(kept, ie)
				}
			}
			ies.List = kept

			got, err := HandleRICControlRequest(limits, decode(t)(e2ap.Encoder(*pdu)))
			require.ErrorIs(t, err, ric.ErrMissingIE)
			require.Nil(t, got)
		})
	}
}

func TestHandleRICControlAcknowledge(t *testing.T) {
	limits := ric.DefaultLimits()
	ack := &ric.ControlAcknowledge{
		RequestID:     ric.RequestID{RequestorID: 1, InstanceID: 2},
		RANFunctionID: 3,
		CallProcessID: []byte{0x0a},
		Status:        ric.ControlStatusRejected,
		Outcome:       []byte{0x0b, 0x0c},
	}

	pdu := decode(t)(message.BuildRICControlAcknowledge(limits, ack))
	got, err := HandleRICControlAcknowledge(limits, pdu)
	require.NoError(t, err)
	require.Equal(t, ack, got)

	_, err = HandleRICControlFailure(limits, pdu)
	require.ErrorIs(t, err, ric.ErrProcedureMismatch)
}

func TestHandleRICControlFailure(t *testing.T) {
	limits := ric.DefaultLimits()
	failure := &ric.ControlFailure{
		RequestID:     ric.RequestID{RequestorID: 1, InstanceID: 2},
		RANFunctionID: 3,
		Cause:         ric.Cause{Type: ric.CauseTypeRICRequest, ID: 9},
	}

	pdu := decode(t)(message.BuildRICControlFailure(limits, failure))
	got, err := HandleRICControlFailure(limits, pdu)
	require.NoError(t, err)
	require.Equal(t, failure, got)
}
