package handler

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/free5gc/e2ap/internal/e2ap/message"
	"github.com/free5gc/e2ap/pkg/e2ap"
	"github.com/free5gc/e2ap/pkg/e2apType"
	"github.com/free5gc/e2ap/pkg/ric"
)

func newIndication() *ric.Indication {
	return &ric.Indication{
		RequestID:      ric.RequestID{RequestorID: 123, InstanceID: 456},
		RANFunctionID:  1,
		ActionID:       2,
		IndicationSN:   65535,
		IndicationType: ric.IndicationTypeReport,
		Header:         []byte{0x01, 0x02, 0x03},
		Message:        []byte{0x04, 0x05, 0x06, 0x07},
	}
}

func TestHandleRICIndication(t *testing.T) {
	limits := ric.DefaultLimits()

	t.Run("without call process id", func(t *testing.T) {
		ind := newIndication()
		pdu := decode(t)(message.BuildRICIndication(limits, ind))

		got, err := HandleRICIndication(limits, pdu)
		require.NoError(t, err)
		require.Equal(t, ind.RequestID, got.RequestID)
		require.Equal(t, ind.RANFunctionID, got.RANFunctionID)
		require.Equal(t, ind.ActionID, got.ActionID)
		require.Equal(t, ind.IndicationSN, got.IndicationSN)
		require.Equal(t, ind.IndicationType, got.IndicationType)
		require.Equal(t, ind.Header, got.Header)
		require.Equal(t, ind.Message, got.Message)
		require.Nil(t, got.CallProcessID)
	})

	t.Run("with call process id", func(t *testing.T) {
		ind := newIndication()
		ind.IndicationType = ric.IndicationTypeInsert
		ind.CallProcessID = []byte{0xca, 0xfe}
		pdu := decode(t)(message.BuildRICIndication(limits, ind))

		got, err := HandleRICIndication(limits, pdu)
		require.NoError(t, err)
		require.Equal(t, ric.IndicationTypeInsert, got.IndicationType)
		require.Equal(t, []byte{0xca, 0xfe}, got.CallProcessID)
	})
}

func TestHandleRICIndicationOwnsBuffers(t *testing.T) {
	limits := ric.DefaultLimits()
	pdu, err := message.BuildRICIndicationPDU(limits, newIndication())
	require.NoError(t, err)

	got, err := HandleRICIndication(limits, pdu)
	require.NoError(t, err)

	for _, ie := range pdu.InitiatingMessage.Value.RICindication.ProtocolIEs.List {
		if ie.Id.Value == e2apType.ProtocolIEIDRICindicationHeader {
			ie.Value.RICindicationHeader.Value[0] = 0xff
		}
	}
	require.Equal(t, []byte{0x01, 0x02, 0x03}, got.Header)
}

func TestHandleRICIndicationRejects(t *testing.T) {
	limits := ric.DefaultLimits()

	t.Run("nil message", func(t *testing.T) {
		got, err := HandleRICIndication(limits, nil)
		require.ErrorIs(t, err, ric.ErrProcedureMismatch)
		require.Nil(t, got)
	})

	t.Run("successful outcome", func(t *testing.T) {
		pdu := decode(t)(message.BuildRICSubscriptionResponse(limits, &ric.SubscriptionResponse{
			ActionAdmittedList: []ric.ActionAdmitted{{ActionID: 1}},
		}))
		got, err := HandleRICIndication(limits, pdu)
		require.ErrorIs(t, err, ric.ErrProcedureMismatch)
		require.Nil(t, got)
	})

	t.Run("envelope without body", func(t *testing.T) {
		got, err := HandleRICIndication(limits, &e2apType.E2APPDU{
			Present: e2apType.E2APPDUPresentInitiatingMessage,
		})
		require.ErrorIs(t, err, ric.ErrProcedureMismatch)
		require.Nil(t, got)
	})

	t.Run("other initiating message", func(t *testing.T) {
		pdu := decode(t)(message.BuildRICSubscriptionDeleteRequest(ric.RequestID{}, 1))
		got, err := HandleRICIndication(limits, pdu)
		require.ErrorIs(t, err, ric.ErrProcedureMismatch)
		require.Nil(t, got)
	})

	t.Run("message above octet string cap", func(t *testing.T) {
		pdu := decode(t)(message.BuildRICIndication(limits, newIndication()))
		got, err := HandleRICIndication(ric.Limits{MaxActions: 16, MaxOctetStringSize: 3}, pdu)
		require.ErrorIs(t, err, ric.ErrAllocation)
		require.Nil(t, got)
	})
}

// indicationWithout builds an indication carrying a call process id, drops
// the IEs with the given ids and passes the tree through the codec.
func indicationWithout(t *testing.T, ids ...int64) *e2apType.E2APPDU {
	t.Helper()
	ind := newIndication()
	ind.CallProcessID = []byte{0x0c}
	pdu, err := message.BuildRICIndicationPDU(ric.DefaultLimits(), ind)
	require.NoError(t, err)

	ies := &pdu.InitiatingMessage.Value.RICindication.ProtocolIEs
	kept := ies.List[:0]
	for _, ie := range ies.List {
		drop := false
		for _, id := range ids {
			if ie.Id.Value == id {
				drop = true
			}
		}
		if !drop {
			kept = append(kept, ie)
		}
	}
	ies.List = kept

	return decode(t)(e2ap.Encoder(*pdu))
}

func TestHandleRICIndicationMissingMandatoryIE(t *testing.T) {
	limits := ric.DefaultLimits()
	testCases := []struct {
		name string
		ids  []int64
	}{
		{name: "RICrequestID", ids: []int64{e2apType.ProtocolIEIDRICrequestID}},
		{name: "RANfunctionID", ids: []int64{e2apType.ProtocolIEIDRANfunctionID}},
		{name: "RICactionID", ids: []int64{e2apType.ProtocolIEIDRICactionID}},
		{name: "RICindicationType", ids: []int64{e2apType.ProtocolIEIDRICindicationType}},
		{name: "RICindicationHeader", ids: []int64{e2apType.ProtocolIEIDRICindicationHeader}},
		{name: "RICindicationMessage", ids: []int64{e2apType.ProtocolIEIDRICindicationMessage}},
		{
			name: "header and message",
			ids: []int64{
				e2apType.ProtocolIEIDRICindicationHeader,
				e2apType.ProtocolIEIDRICindicationMessage,
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := HandleRICIndication(limits, indicationWithout(t, tc.ids...))
			require.ErrorIs(t, err, ric.ErrMissingIE)
			require.Nil(t, got)
		})
	}
}

func TestHandleRICIndicationOptionalIEs(t *testing.T) {
	limits := ric.DefaultLimits()

	got, err := HandleRICIndication(limits, indicationWithout(t,
		e2apType.ProtocolIEIDRICindicationSN, e2apType.ProtocolIEIDRICcallProcessID))
	require.NoError(t, err)
	require.Equal(t, int64(0), got.IndicationSN)
	require.Nil(t, got.CallProcessID)
	require.Equal(t, []byte{0x01, 0x02, 0x03}, got.Header)
	require.Equal(t, []byte{0x04, 0x05, 0x06, 0x07}, got.Message)
}
