package api

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"

	"github.com/google/uuid"

	"carebridge/internal/assistant"
)

// Handler holds the HTTP surface. Each route maps to one method; handlers
// are stateless and share only the assistant service.
type Handler struct {
	svc *assistant.Service
}

func NewHandler(svc *assistant.Service) *Handler {
	return &Handler{svc: svc}
}

// Register wires every route into the mux.
func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("/handle_schedule_with_gpt", h.HandleScheduleWithGPT)
	mux.HandleFunc("/get_todo", h.GetTodo)
	mux.HandleFunc("/create_image", h.CreateImage)
	mux.HandleFunc("/set_hist", h.SetHistory)
	mux.HandleFunc("/get_hist", h.GetHistory)
	mux.HandleFunc("/sign_up", h.SignUp)
	mux.HandleFunc("/init", h.Init)
	mux.HandleFunc("/set_schedule", h.SetSchedule)
	mux.HandleFunc("/set_message", h.SetMessage)
	mux.HandleFunc("/get_audiofile", h.GetAudioFile)
}

type SetHistoryResponse struct {
	IsSuccess bool                   `json:"is_success"`
	SetData   assistant.HistoryEntry `json:"set_data"`
}

type SignUpResponse struct {
	UUID string `json:"uuid"`
}

// userID resolves the user_id query parameter, falling back to the shared
// default account.
func userID(r *http.Request) string {
	if id := r.URL.Query().Get("user_id"); id != "" {
		return id
	}
	return assistant.DefaultUserID
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		log.Printf("failed to encode response: %v", err)
	}
}

func (h *Handler) HandleScheduleWithGPT(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	out, _, err := h.svc.ExtractTodos(r.Context(), userID(r), string(body))
	if err != nil {
		log.Printf("schedule extraction failed: %v", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	_, _ = w.Write(out)
}

func (h *Handler) GetTodo(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	out, err := h.svc.Todos(r.Context(), userID(r), r.URL.Query().Get("from_date"))
	if err != nil {
		log.Printf("to-do retrieval failed: %v", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	_, _ = w.Write(out)
}

func (h *Handler) CreateImage(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	prompt := r.URL.Query().Get("prompt")
	if prompt == "" {
		prompt = assistant.DefaultImagePrompt
	}

	img, err := h.svc.CreateImage(r.Context(), prompt)
	if err != nil {
		log.Printf("image generation failed: %v", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	_, _ = w.Write(img)
}

func (h *Handler) SetHistory(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	entry, err := h.svc.AppendHistory(r.Context(), userID(r), string(body))
	if err != nil {
		log.Printf("history append failed: %v", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, SetHistoryResponse{IsSuccess: true, SetData: entry})
}

func (h *Handler) GetHistory(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	out, err := h.svc.History(r.Context(), userID(r))
	if err != nil {
		log.Printf("history retrieval failed: %v", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	_, _ = w.Write(out)
}

func (h *Handler) SignUp(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	id, err := h.svc.SignUp(r.Context(), uuid.NewString())
	if err != nil {
		log.Printf("sign-up failed: %v", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	log.Printf("a new account has been registered: %s", id)
	writeJSON(w, SignUpResponse{UUID: id})
}

func (h *Handler) Init(w http.ResponseWriter, r *http.Request) {
	ok, err := h.svc.Healthy(r.Context())
	if err != nil {
		log.Printf("liveness check failed: %v", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if ok {
		_, _ = io.WriteString(w, "OK")
	} else {
		_, _ = io.WriteString(w, "Failed")
	}
}

func (h *Handler) SetSchedule(w http.ResponseWriter, r *http.Request) {
	// Query takes precedence; a JSON body {"schedule": ...} is the fallback.
	schedule := r.URL.Query().Get("schedule")
	if schedule == "" && r.Body != nil {
		var req struct {
			Schedule string `json:"schedule"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err == nil {
			schedule = req.Schedule
		}
	}
	if schedule == "" {
		http.Error(w, "Please provide a 'schedule' parameter in the query string or request body.", http.StatusBadRequest)
		return
	}

	if err := h.svc.SetSchedule(r.Context(), schedule); err != nil {
		log.Printf("schedule update failed: %v", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	_, _ = fmt.Fprintf(w, "Schedule successfully set to : %s", schedule)
}

func (h *Handler) SetMessage(w http.ResponseWriter, r *http.Request) {
	message := r.URL.Query().Get("message")
	if message == "" {
		message = assistant.DefaultGreeting
	}

	if err := h.svc.SetReminder(r.Context(), userID(r), message); err != nil {
		log.Printf("reminder synthesis failed: %v", err)
		http.Error(w, fmt.Sprintf("Failed to set message : %v", err), http.StatusBadRequest)
		return
	}
	_, _ = fmt.Fprintf(w, "Message successfully set to : %s", message)
}

func (h *Handler) GetAudioFile(w http.ResponseWriter, r *http.Request) {
	audiofile := r.URL.Query().Get("audiofile")
	if audiofile == "" {
		audiofile = assistant.ReminderFileName
	}

	audio, err := h.svc.Audio(r.Context(), userID(r), audiofile)
	if err != nil {
		log.Printf("audio download failed: %v", err)
		http.Error(w, fmt.Sprintf("Failed to download audio file from blob storage. : %v", err), http.StatusBadRequest)
		return
	}
	w.Header().Set("Content-Type", "audio/wav")
	_, _ = w.Write(audio)
}
