package assistant

import (
	"context"
	"errors"
)

// State enumerates the interaction machine's states. Transitions:
//
//	idle ──StartCamera──▶ awaiting_capture ──Tick×N──▶ processing_image
//	processing_image ──ok──▶ image_session_active ──Ask──▶ processing_chat
//	processing_image ──err─▶ general_listening
//	processing_chat ──────▶ image_session_active | general_listening
//	StopCamera from anywhere ──▶ general_listening
type State string

const (
	StateIdle               State = "idle"
	StateAwaitingCapture    State = "awaiting_capture"
	StateProcessingImage    State = "processing_image"
	StateImageSessionActive State = "image_session_active"
	StateGeneralListening   State = "general_listening"
	StateProcessingChat     State = "processing_chat"
)

var (
	// ErrBusy signals that an inference call is already in flight.
	ErrBusy = errors.New("assistant: a request is already being processed")
	// ErrInvalidState signals an input the current state does not accept.
	ErrInvalidState = errors.New("assistant: input not accepted in current state")
)

// Camera abstracts the device capture stream.
type Camera interface {
	Start(ctx context.Context) error
	Frame() ([]byte, error)
	Stop()
}

// Speaker abstracts speech synthesis. Cancel stops any utterance in progress.
type Speaker interface {
	Speak(text string)
	Cancel()
}

// Inference is the slice of the inference service the machine needs.
// *Client satisfies it.
type Inference interface {
	UploadImage(ctx context.Context, image []byte) (*ImageAnalysis, error)
	Chat(ctx context.Context, question, sessionID string) (string, error)
}

// Config tunes one accessibility variant of the machine.
type Config struct {
	CountdownSeconds int
	WelcomeMessage   string
	CameraOnMessage  string
	CameraOffMessage string
	CaptureMessage   string
}

// VisuallyImpairedConfig drives the voice-first variant: longer countdown,
// every status change is spoken.
func VisuallyImpairedConfig() Config {
	return Config{
		CountdownSeconds: 10,
		WelcomeMessage:   "Welcome! Tap the screen or the camera button to begin.",
		CameraOnMessage:  "Camera started. Capturing image in 10 seconds.",
		CameraOffMessage: "Camera off.",
		CaptureMessage:   "Capturing image, please wait.",
	}
}

// HearingImpairedConfig drives the text-first variant with a short countdown.
func HearingImpairedConfig() Config {
	return Config{
		CountdownSeconds: 5,
		WelcomeMessage:   "Welcome! Type your question or turn on the camera.",
		CameraOnMessage:  "Capturing image in 5 seconds. Please hold steady.",
		CameraOffMessage: "Camera off. You can ask general questions below.",
		CaptureMessage:   "Capturing image, please wait.",
	}
}

const (
	imageFallbackMessage = "Sorry, I couldn't analyze the image."
	chatFallbackMessage  = "Sorry, something went wrong."
	permissionMessage    = "Camera access denied."
)

// Machine is the explicit finite-state controller behind one assistant page.
// It owns no timers itself: the embedding UI calls Tick once per second while
// a countdown is shown, so the machine stays deterministic and testable.
// Machine is not safe for concurrent use; a page drives it from one loop.
type Machine struct {
	cfg       Config
	camera    Camera
	speaker   Speaker
	inference Inference

	state      State
	countdown  int
	cameraOn   bool
	inFlight   bool
	sessionID  string
	response   string
	transcript string
}

func NewMachine(cfg Config, camera Camera, speaker Speaker, inference Inference) *Machine {
	return &Machine{
		cfg:       cfg,
		camera:    camera,
		speaker:   speaker,
		inference: inference,
		state:     StateIdle,
		response:  cfg.WelcomeMessage,
	}
}

func (m *Machine) State() State       { return m.state }
func (m *Machine) Response() string   { return m.response }
func (m *Machine) Transcript() string { return m.transcript }
func (m *Machine) SessionID() string  { return m.sessionID }
func (m *Machine) CameraOn() bool     { return m.cameraOn }

// Countdown reports the seconds left before capture, 0 when no countdown runs.
func (m *Machine) Countdown() int { return m.countdown }

// StartCamera begins the capture countdown. Only a user gesture reaches here,
// so it is accepted from any non-processing state.
func (m *Machine) StartCamera(ctx context.Context) error {
	if m.cameraOn {
		return ErrInvalidState
	}
	if m.inFlight {
		return ErrBusy
	}

	if err := m.camera.Start(ctx); err != nil {
		m.say(permissionMessage)
		return err
	}

	m.cameraOn = true
	m.sessionID = ""
	m.countdown = m.cfg.CountdownSeconds
	m.state = StateAwaitingCapture
	m.say(m.cfg.CameraOnMessage)
	return nil
}

// StopCamera releases the device and cancels any pending countdown.
func (m *Machine) StopCamera() {
	if m.cameraOn {
		m.camera.Stop()
	}
	m.cameraOn = false
	m.sessionID = ""
	m.countdown = 0
	m.state = StateGeneralListening
	m.say(m.cfg.CameraOffMessage)
}

// Tick advances the one-second capture countdown. At zero the current frame
// is captured and uploaded synchronously.
func (m *Machine) Tick(ctx context.Context) error {
	if m.state != StateAwaitingCapture {
		return nil
	}

	m.countdown--
	if m.countdown > 0 {
		return nil
	}

	return m.captureAndSend(ctx)
}

func (m *Machine) captureAndSend(ctx context.Context) error {
	if m.inFlight {
		return ErrBusy
	}
	m.inFlight = true
	defer func() { m.inFlight = false }()

	m.state = StateProcessingImage
	m.countdown = 0
	m.say(m.cfg.CaptureMessage)

	frame, err := m.camera.Frame()
	if err == nil {
		var analysis *ImageAnalysis
		analysis, err = m.inference.UploadImage(ctx, frame)
		if err == nil {
			m.sessionID = analysis.SessionID
			m.say(analysis.Response)
			m.state = StateImageSessionActive
			return nil
		}
	}

	// Terminal for this interaction: the user re-initiates explicitly
	m.say(imageFallbackMessage)
	m.state = StateGeneralListening
	return err
}

// Ask submits a follow-up question, spoken or typed. Accepted only while
// listening; the guard flag rejects overlapping calls.
func (m *Machine) Ask(ctx context.Context, question string) error {
	if m.state != StateImageSessionActive && m.state != StateGeneralListening {
		return ErrInvalidState
	}
	if m.inFlight {
		return ErrBusy
	}
	m.inFlight = true
	defer func() { m.inFlight = false }()

	m.transcript = question
	m.state = StateProcessingChat

	answer, err := m.inference.Chat(ctx, question, m.sessionID)
	if err != nil {
		m.say(chatFallbackMessage)
	} else {
		m.say(answer)
	}

	// Back to the listening state matching the camera
	if m.cameraOn {
		m.state = StateImageSessionActive
	} else {
		m.state = StateGeneralListening
	}
	return err
}

// Close tears the session down: camera released, speech cancelled.
// Best-effort client-side cleanup, nothing is coordinated with a server.
func (m *Machine) Close() {
	if m.cameraOn {
		m.camera.Stop()
		m.cameraOn = false
	}
	m.speaker.Cancel()
	m.countdown = 0
	m.sessionID = ""
	m.state = StateIdle
}

// say replaces the current response and speaks it, cancelling any utterance
// still in progress.
func (m *Machine) say(text string) {
	m.response = text
	m.speaker.Cancel()
	m.speaker.Speak(text)
}
