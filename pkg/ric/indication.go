package ric

// Indication is a decoded RIC Indication. Header, Message and CallProcessID
// are owned by the record; CallProcessID is nil when the IE was absent.
type Indication struct {
	RequestID      RequestID      `json:"requestID"`
	RANFunctionID  int64          `json:"ranFunctionID"`
	ActionID       int64          `json:"actionID"`
	IndicationSN   int64          `json:"indicationSN"`
	IndicationType IndicationType `json:"indicationType"`
	Header         []byte         `json:"header"`
	Message        []byte         `json:"message"`
	CallProcessID  []byte         `json:"callProcessID,omitempty"`

	released bool
}

// Release drops the buffers held by the record. Releasing a nil or an
// already released Indication does nothing.
func (ind *Indication) Release() {
	if ind == nil || ind.released {
		return
	}
	if ind.Header != nil {
		clear(ind.Header)
		ind.Header = nil
	}
	if ind.Message != nil {
		clear(ind.Message)
		ind.Message = nil
	}
	if ind.CallProcessID != nil {
		clear(ind.CallProcessID)
		ind.CallProcessID = nil
	}
	ind.released = true
}

func (ind *Indication) Released() bool {
	return ind != nil && ind.released
}
