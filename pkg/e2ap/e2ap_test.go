package e2ap

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/free5gc/aper"
	"github.com/free5gc/e2ap/pkg/e2apType"
	"github.com/free5gc/e2ap/pkg/ric"
)

func newRICsubscriptionDeleteRequest() e2apType.E2APPDU {
	var pdu e2apType.E2APPDU
	pdu.Present = e2apType.E2APPDUPresentInitiatingMessage
	pdu.InitiatingMessage = new(e2apType.InitiatingMessage)
	pdu.InitiatingMessage.ProcedureCode.Value = e2apType.ProcedureCodeRICsubscriptionDelete
	pdu.InitiatingMessage.Criticality.Value = e2apType.CriticalityPresentReject
	pdu.InitiatingMessage.Value.Present = e2apType.InitiatingMessagePresentRICsubscriptionDeleteRequest
	pdu.InitiatingMessage.Value.RICsubscriptionDeleteRequest = new(e2apType.RICsubscriptionDeleteRequest)

	ies := &pdu.InitiatingMessage.Value.RICsubscriptionDeleteRequest.ProtocolIEs

	ie := e2apType.RICsubscriptionDeleteRequestIEs{}
	ie.Id.Value = e2apType.ProtocolIEIDRICrequestID
	ie.Criticality.Value = e2apType.CriticalityPresentReject
	ie.Value.Present = e2apType.RICsubscriptionDeleteRequestIEsPresentRICrequestID
	ie.Value.RICrequestID = &e2apType.RICrequestID{RICrequestorID: 100, RICinstanceID: 200}
	ies.List = append(ies.List, ie)

	ie = e2apType.RICsubscriptionDeleteRequestIEs{}
	ie.Id.Value = e2apType.ProtocolIEIDRANfunctionID
	ie.Criticality.Value = e2apType.CriticalityPresentReject
	ie.Value.Present = e2apType.RICsubscriptionDeleteRequestIEsPresentRANfunctionID
	ie.Value.RANfunctionID = &e2apType.RANfunctionID{Value: 300}
	ies.List = append(ies.List, ie)

	return pdu
}

func TestEncoderDecoder(t *testing.T) {
	pdu := newRICsubscriptionDeleteRequest()

	b, err := Encoder(pdu)
	require.NoError(t, err)
	require.NotEmpty(t, b)

	decoded, err := Decoder(b)
	require.NoError(t, err)
	require.Equal(t, e2apType.E2APPDUPresentInitiatingMessage, decoded.Present)
	require.Equal(t, e2apType.ProcedureCodeRICsubscriptionDelete, decoded.InitiatingMessage.ProcedureCode.Value)

	ies := decoded.InitiatingMessage.Value.RICsubscriptionDeleteRequest.ProtocolIEs.List
	require.Len(t, ies, 2)
	require.Equal(t, int64(100), ies[0].Value.RICrequestID.RICrequestorID)
	require.Equal(t, int64(200), ies[0].Value.RICrequestID.RICinstanceID)
	require.Equal(t, int64(300), ies[1].Value.RANfunctionID.Value)
}

func TestDecoderMalformed(t *testing.T) {
	b, err := Encoder(newRICsubscriptionDeleteRequest())
	require.NoError(t, err)

	testCases := []struct {
		name string
		b    []byte
	}{
		{"nil", nil},
		{"empty", []byte{}},
		{"envelope only", []byte{0x00}},
		{"truncated", b[:len(b)/2]},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			pdu, err := Decoder(tc.b)
			var decodeErr *ric.DecodeError
			require.ErrorAs(t, err, &decodeErr)
			require.Nil(t, pdu)
		})
	}
}

func TestEncoderFailure(t *testing.T) {
	pdu := newRICsubscriptionDeleteRequest()
	// RANfunctionID is INTEGER (0..4095)
	pdu.InitiatingMessage.Value.RICsubscriptionDeleteRequest.ProtocolIEs.List[1].Value.RANfunctionID.Value = 5000

	b, err := Encoder(pdu)
	var encodeErr *ric.EncodeError
	require.ErrorAs(t, err, &encodeErr)
	require.Equal(t, "RICsubscriptionDeleteRequest", encodeErr.Field)
	require.Nil(t, b)
}

func TestEncoderOctetString(t *testing.T) {
	var pdu e2apType.E2APPDU
	pdu.Present = e2apType.E2APPDUPresentInitiatingMessage
	pdu.InitiatingMessage = new(e2apType.InitiatingMessage)
	pdu.InitiatingMessage.ProcedureCode.Value = e2apType.ProcedureCodeRICindication
	pdu.InitiatingMessage.Criticality.Value = e2apType.CriticalityPresentIgnore
	pdu.InitiatingMessage.Value.Present = e2apType.InitiatingMessagePresentRICindication
	pdu.InitiatingMessage.Value.RICindication = new(e2apType.RICindication)

	ie := e2apType.RICindicationIEs{}
	ie.Id.Value = e2apType.ProtocolIEIDRICindicationHeader
	ie.Criticality.Value = e2apType.CriticalityPresentReject
	ie.Value.Present = e2apType.RICindicationIEsPresentRICindicationHeader
	ie.Value.RICindicationHeader = &e2apType.RICindicationHeader{Value: aper.OctetString{0x01, 0x02, 0x03}}
	ies := &pdu.InitiatingMessage.Value.RICindication.ProtocolIEs
	ies.List = append(ies.List, ie)

	b, err := Encoder(pdu)
	require.NoError(t, err)

	decoded, err := Decoder(b)
	require.NoError(t, err)
	header := decoded.InitiatingMessage.Value.RICindication.ProtocolIEs.List[0].Value.RICindicationHeader
	require.Equal(t, aper.OctetString{0x01, 0x02, 0x03}, header.Value)
}
