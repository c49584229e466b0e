package ws

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/MohitGedela/GeoShield/pkg/domain/model"
	"github.com/MohitGedela/GeoShield/pkg/domain/types"
	"github.com/MohitGedela/GeoShield/pkg/service/broadcast"
	"github.com/MohitGedela/GeoShield/pkg/usecase"
	"github.com/MohitGedela/GeoShield/pkg/utils/errutil"
	"github.com/MohitGedela/GeoShield/pkg/utils/logging"
	"github.com/MohitGedela/GeoShield/pkg/utils/safe"
	"github.com/go-playground/validator/v10"
	"github.com/gorilla/websocket"
	"github.com/m-mizutani/goerr/v2"
)

const (
	// Time allowed to write a message to the peer
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer
	pongWait = 60 * time.Second

	// Send pings to peer with this period. Must be less than pongWait.
	pingPeriod = 30 * time.Second

	// Maximum inbound command size
	maxMessageSize = 64 * 1024
)

var (
	errUnknownCommand = goerr.New("unknown command")
	errInvalidPayload = goerr.New("invalid command payload")

	validate = validator.New()
)

// Handler upgrades HTTP requests to websocket observers of the broadcast channel.
// Every broadcast event is written to the observer; commands read from it are run
// through the use cases and answered to that observer only.
type Handler struct {
	hub      *broadcast.Hub
	uc       *usecase.UseCases
	upgrader websocket.Upgrader
}

type Option func(*Handler)

// WithAllowedOrigin restricts upgrades to the given origin. "*" allows any origin.
func WithAllowedOrigin(origin string) Option {
	return func(h *Handler) {
		h.upgrader.CheckOrigin = checkOrigin(origin)
	}
}

func New(hub *broadcast.Hub, uc *usecase.UseCases, opts ...Option) *Handler {
	h := &Handler{
		hub: hub,
		uc:  uc,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  4096,
			WriteBufferSize: 4096,
		},
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

func checkOrigin(allowed string) func(r *http.Request) bool {
	allowed = strings.TrimRight(allowed, "/")
	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		return origin == "" || allowed == "*" || origin == allowed
	}
}

// envelope is the wire shape of events and commands
type envelope struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade has already written the error response
		logging.From(r.Context()).Warn("websocket upgrade failed", "error", err.Error())
		return
	}

	observer := h.hub.Subscribe()
	logger := logging.From(r.Context()).With("observer_id", observer.ID())
	ctx := logging.With(r.Context(), logger)
	logger.Info("observer connected", "remote", r.RemoteAddr)

	done := make(chan struct{})
	go func() {
		defer close(done)
		writePump(ctx, conn, observer)
	}()

	h.readPump(ctx, conn, observer)

	h.hub.Unsubscribe(observer)
	<-done
	safe.Close(ctx, conn)
	logger.Info("observer disconnected")
}

// writePump forwards queued events to the connection until the queue is closed
func writePump(ctx context.Context, conn *websocket.Conn, observer *broadcast.Observer) {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case data, ok := <-observer.Queue():
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				// Unsubscribed or evicted
				_ = conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseGoingAway, ""))
				// Unblock readPump if the hub dropped us
				_ = conn.SetReadDeadline(time.Now())
				return
			}
			if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
				logging.From(ctx).Debug("websocket write failed", "error", err.Error())
				_ = conn.SetReadDeadline(time.Now())
				drain(observer)
				return
			}

		case <-ticker.C:
			if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait)); err != nil {
				logging.From(ctx).Debug("websocket ping failed", "error", err.Error())
				_ = conn.SetReadDeadline(time.Now())
				drain(observer)
				return
			}
		}
	}
}

// drain discards events until the queue is closed so the hub never sees a full
// queue for a connection that is already gone
func drain(observer *broadcast.Observer) {
	go func() {
		for range observer.Queue() {
		}
	}()
}

func (h *Handler) readPump(ctx context.Context, conn *websocket.Conn, observer *broadcast.Observer) {
	conn.SetReadLimit(maxMessageSize)
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure, websocket.CloseNoStatusReceived) {
				logging.From(ctx).Debug("websocket read failed", "error", err.Error())
			}
			return
		}

		reply := h.dispatch(ctx, data)
		if err := h.hub.Send(ctx, observer, reply); err != nil {
			if errors.Is(err, broadcast.ErrObserverGone) {
				return
			}
			_ = errutil.Handle(ctx, err, "failed to reply to observer")
		}
	}
}

// dispatch runs one inbound command and returns the reply for its sender
func (h *Handler) dispatch(ctx context.Context, data []byte) *model.Event {
	var msg envelope
	if err := json.Unmarshal(data, &msg); err != nil {
		return errorEvent(ctx, "", goerr.Wrap(errInvalidPayload, err.Error()))
	}

	command := types.CommandType(msg.Event)
	logger := logging.From(ctx).With("command", command)
	ctx = logging.With(ctx, logger)

	var (
		result *usecase.TransitionResult
		err    error
	)
	switch command {
	case types.CommandAcceptRequest:
		var input usecase.AcceptInput
		if err = decodePayload(msg.Data, &input); err == nil {
			result, err = h.uc.Assignment.Accept(ctx, input)
		}

	case types.CommandCompleteRequest:
		var input usecase.CompleteInput
		if err = decodePayload(msg.Data, &input); err == nil {
			result, err = h.uc.Assignment.Complete(ctx, input)
		}

	case types.CommandSendMessage:
		var input usecase.SendMessageInput
		if err = decodePayload(msg.Data, &input); err == nil {
			_, err = h.uc.Messaging.SendMessage(ctx, input)
		}

	case types.CommandForwardAlert:
		var input usecase.ForwardAlertInput
		if err = decodePayload(msg.Data, &input); err == nil {
			_, err = h.uc.Messaging.ForwardAlert(ctx, input)
		}

	default:
		err = goerr.Wrap(errUnknownCommand, "cannot dispatch", goerr.V("command", msg.Event))
	}

	if err != nil {
		return errorEvent(ctx, command, err)
	}

	reply := &model.CommandResult{Command: command, Outcome: types.OutcomeUpdated}
	if result != nil {
		reply.Outcome = result.Outcome
		reply.Reason = result.Reason
	}
	return model.NewEvent(types.EventCommandResult, reply)
}

func decodePayload(data json.RawMessage, dst any) error {
	if len(data) == 0 {
		return goerr.Wrap(errInvalidPayload, "command data is required")
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return goerr.Wrap(errInvalidPayload, err.Error())
	}
	if err := validate.Struct(dst); err != nil {
		return goerr.Wrap(errInvalidPayload, err.Error())
	}
	return nil
}

// errorEvent builds the error reply. Bad input is echoed back; anything else is
// logged and reported with a generic message.
func errorEvent(ctx context.Context, command types.CommandType, err error) *model.Event {
	message := err.Error()
	switch {
	case errors.Is(err, errInvalidPayload),
		errors.Is(err, errUnknownCommand),
		errors.Is(err, usecase.ErrValidation),
		errors.Is(err, model.ErrNotFound):
		logging.From(ctx).Warn("command rejected", "error", message)
	default:
		_ = errutil.Handle(ctx, err, "command failed")
		message = "internal error"
	}
	return model.NewEvent(types.EventError, &model.CommandError{Command: command, Error: message})
}
