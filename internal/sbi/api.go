package sbi

import (
	"encoding/hex"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/free5gc/e2ap/internal/logger"
	"github.com/free5gc/e2ap/internal/metrics"
	"github.com/free5gc/e2ap/pkg/ric"
)

type PDU struct {
	PDU string `json:"pdu" binding:"required,hexadecimal"`
}

type ProblemDetails struct {
	Title     string `json:"title"`
	Status    int    `json:"status"`
	Detail    string `json:"detail,omitempty"`
	RequestID string `json:"requestID,omitempty"`
}

func (s *Server) problem(c *gin.Context, status int, title string, err error) {
	pd := ProblemDetails{
		Title:     title,
		Status:    status,
		RequestID: c.GetString(requestIDKey),
	}
	if err != nil {
		pd.Detail = err.Error()
	}
	logger.SBILog.Warnf("[%s] %s: %v", pd.RequestID, title, err)
	c.JSON(status, pd)
}

// errorStatus maps a builder or extractor error onto an HTTP status.
func errorStatus(err error) int {
	var encodeErr *ric.EncodeError
	var decodeErr *ric.DecodeError
	switch {
	case errors.Is(err, ric.ErrProcedureMismatch):
		return http.StatusUnprocessableEntity
	case errors.Is(err, ric.ErrTooManyActions), errors.Is(err, ric.ErrAllocation):
		return http.StatusRequestEntityTooLarge
	case errors.As(err, &encodeErr), errors.As(err, &decodeErr), errors.Is(err, ric.ErrMissingIE):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) HTTPHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// HTTPEncodeSubscriptionRequest encodes the posted request, or the
// configured template when the body is empty.
func (s *Server) HTTPEncodeSubscriptionRequest(c *gin.Context) {
	var req *ric.SubscriptionRequest
	if c.Request.ContentLength == 0 {
		template := s.cfg.GetSubscriptionTemplate()
		if template == nil {
			s.problem(c, http.StatusBadRequest, "No subscription template configured", nil)
			return
		}
		var err error
		if req, err = template.ToRequest(); err != nil {
			s.problem(c, http.StatusInternalServerError, "Invalid subscription template", err)
			return
		}
	} else {
		req = new(ric.SubscriptionRequest)
		if err := c.ShouldBindJSON(req); err != nil {
			s.problem(c, http.StatusBadRequest, "Malformed request", err)
			return
		}
	}

	b, err := s.procedures.EncodeSubscriptionRequest(req.RequestID, req.RANFunctionID,
		req.EventTriggerDefinition, req.Actions)
	metrics.RecordEncode("RICsubscriptionRequest", len(b), err)
	if err != nil {
		s.problem(c, errorStatus(err), "Encode RIC Subscription Request failed", err)
		return
	}
	c.JSON(http.StatusOK, PDU{PDU: hex.EncodeToString(b)})
}

func (s *Server) HTTPEncodeSubscriptionDeleteRequest(c *gin.Context) {
	var req ric.SubscriptionDeleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.problem(c, http.StatusBadRequest, "Malformed request", err)
		return
	}

	b, err := s.procedures.EncodeSubscriptionDeleteRequest(req.RequestID, req.RANFunctionID)
	metrics.RecordEncode("RICsubscriptionDeleteRequest", len(b), err)
	if err != nil {
		s.problem(c, errorStatus(err), "Encode RIC Subscription Delete Request failed", err)
		return
	}
	c.JSON(http.StatusOK, PDU{PDU: hex.EncodeToString(b)})
}

// HTTPEncodeControlRequest encodes the posted request, or the configured
// template when the body is empty.
func (s *Server) HTTPEncodeControlRequest(c *gin.Context) {
	var req *ric.ControlRequest
	if c.Request.ContentLength == 0 {
		template := s.cfg.GetControlTemplate()
		if template == nil {
			s.problem(c, http.StatusBadRequest, "No control template configured", nil)
			return
		}
		var err error
		if req, err = template.ToRequest(); err != nil {
			s.problem(c, http.StatusInternalServerError, "Invalid control template", err)
			return
		}
	} else {
		req = &ric.ControlRequest{AckRequest: ric.ControlAckRequestOmit}
		if err := c.ShouldBindJSON(req); err != nil {
			s.problem(c, http.StatusBadRequest, "Malformed request", err)
			return
		}
	}

	b, err := s.procedures.EncodeControlRequest(req.RequestID, req.RANFunctionID,
		req.CallProcessID, req.Header, req.Message, req.AckRequest)
	metrics.RecordEncode("RICcontrolRequest", len(b), err)
	if err != nil {
		s.problem(c, errorStatus(err), "Encode RIC Control Request failed", err)
		return
	}
	c.JSON(http.StatusOK, PDU{PDU: hex.EncodeToString(b)})
}

func (s *Server) HTTPDecode(c *gin.Context) {
	var body PDU
	if err := c.ShouldBindJSON(&body); err != nil {
		s.problem(c, http.StatusBadRequest, "Malformed request", err)
		return
	}
	b, err := hex.DecodeString(body.PDU)
	if err != nil {
		s.problem(c, http.StatusBadRequest, "Malformed request", err)
		return
	}

	msg, err := s.procedures.Decode(b)
	name := "unknown"
	if msg != nil {
		name = msg.Name
	}
	metrics.RecordDecode(name, len(b), err)
	if err != nil {
		s.problem(c, errorStatus(err), "Decode E2AP message failed", err)
		return
	}
	if ind, ok := msg.Record.(*ric.Indication); ok {
		defer ind.Release()
	}
	c.JSON(http.StatusOK, msg)
}
