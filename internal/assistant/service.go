package assistant

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path"
	"strings"
	"time"

	"carebridge/internal/blob"
	"carebridge/internal/image"
	"carebridge/internal/llm"
	"carebridge/internal/speech"
)

const (
	ChatHistFileName = "chat_hist.json"
	TodoListFileName = "todo_list.json"
	ReminderFileName = "good_morning.wav"

	// The schedule blob is global, not per-user.
	ScheduleBlobName = "schedule.txt"

	// DefaultUserID is assumed whenever a request carries no user_id.
	DefaultUserID = "c0ff4b5b-3c2d-4335-a057-33e48c565f1e"

	promptTimeLayout  = "2006-01-02 15:04 PM"
	historyTimeLayout = "2006-01-02 15:04:05-07:00"

	// Spelling kept as-is: existing history blobs already carry it.
	historyRole = "asisstant"
)

// Service orchestrates the blob store and the hosted AI services. It holds
// no per-request state; every method is a short sequence of downstream
// calls with no retries.
type Service struct {
	store    blob.Store
	chat     llm.Client
	images   image.Generator
	tts      speech.Synthesizer
	loc      *time.Location
	seedPath string
}

func New(store blob.Store, chat llm.Client, images image.Generator, tts speech.Synthesizer, loc *time.Location, seedPath string) *Service {
	return &Service{
		store:    store,
		chat:     chat,
		images:   images,
		tts:      tts,
		loc:      loc,
		seedPath: seedPath,
	}
}

func (s *Service) userPath(userID, name string) string {
	return path.Join(userID, name)
}

func (s *Service) now() time.Time {
	return time.Now().In(s.loc)
}

// ExtractTodos classifies a transcript and, when it mentions a schedule,
// regenerates the user's to-do blob from the full chat history. The second
// return value reports whether the blob was rewritten; when false the body
// is the raw classifier output, surfaced unchanged.
func (s *Service) ExtractTodos(ctx context.Context, userID, transcript string) ([]byte, bool, error) {
	first, err := s.chat.Generate(ctx, []llm.Message{
		{Role: "system", Content: classifyPrompt},
		{Role: "assistant", Content: transcript},
	})
	if err != nil {
		return nil, false, fmt.Errorf("classification failed: %w", err)
	}
	if strings.ToLower(first.Content) != "true" {
		return []byte(first.Content), false, nil
	}

	histData, err := s.store.Download(ctx, s.userPath(userID, ChatHistFileName))
	if err != nil {
		return nil, false, fmt.Errorf("failed to load chat history: %w", err)
	}
	var history []HistoryEntry
	if err := json.Unmarshal(histData, &history); err != nil {
		return nil, false, fmt.Errorf("failed to parse chat history: %w", err)
	}
	// The first entry is the sign-up seed, not a real utterance.
	if len(history) > 0 {
		history = history[1:]
	}
	histJSON, err := marshalPretty(history)
	if err != nil {
		return nil, false, fmt.Errorf("failed to encode chat history: %w", err)
	}

	messages := []llm.Message{
		{Role: "system", Content: fmt.Sprintf(extractPromptFormat, s.now().Format(promptTimeLayout))},
		{Role: "user", Content: fmt.Sprintf(historyMessageFormat, histJSON)},
	}

	todoPath := s.userPath(userID, TodoListFileName)
	exists, err := s.store.Exists(ctx, todoPath)
	if err != nil {
		return nil, false, fmt.Errorf("failed to check to-do blob: %w", err)
	}
	if exists {
		existing, err := s.store.Download(ctx, todoPath)
		if err != nil {
			return nil, false, fmt.Errorf("failed to load to-do blob: %w", err)
		}
		messages = append(messages, llm.Message{
			Role:    "user",
			Content: fmt.Sprintf(existingTodoMessageFormat, existing),
		})
	}

	second, err := s.chat.Generate(ctx, messages)
	if err != nil {
		return nil, false, fmt.Errorf("extraction failed: %w", err)
	}

	items, err := parseTodoList(second.Content)
	if err != nil {
		return nil, false, err
	}
	todoJSON, err := marshalPretty(items)
	if err != nil {
		return nil, false, fmt.Errorf("failed to encode to-do list: %w", err)
	}
	if err := s.store.Upload(ctx, todoPath, todoJSON, true); err != nil {
		return nil, false, fmt.Errorf("failed to store to-do list: %w", err)
	}
	return todoJSON, true, nil
}

// Todos returns the stored to-do blob. With a non-empty fromDate the model
// filters out entries older than that many days; its output is returned
// as-is, so filtering correctness rests entirely with the model.
func (s *Service) Todos(ctx context.Context, userID, fromDate string) ([]byte, error) {
	data, err := s.store.Download(ctx, s.userPath(userID, TodoListFileName))
	if err != nil {
		return nil, fmt.Errorf("failed to load to-do blob: %w", err)
	}
	if fromDate == "" {
		return data, nil
	}

	resp, err := s.chat.Generate(ctx, []llm.Message{
		{Role: "system", Content: fmt.Sprintf(filterPromptFormat, s.now().Format(promptTimeLayout), fromDate)},
		{Role: "user", Content: string(data)},
	})
	if err != nil {
		return nil, fmt.Errorf("filtering failed: %w", err)
	}
	return []byte(resp.Content), nil
}

// AppendHistory appends one assistant utterance to the user's history blob
// and returns the stored entry. Read-then-overwrite with no concurrency
// check; concurrent appends to the same user race last-write-wins.
func (s *Service) AppendHistory(ctx context.Context, userID, content string) (HistoryEntry, error) {
	entry := HistoryEntry{
		Role:     historyRole,
		Content:  content,
		Datetime: s.now().Truncate(time.Second).Format(historyTimeLayout),
	}

	histPath := s.userPath(userID, ChatHistFileName)
	data, err := s.store.Download(ctx, histPath)
	if err != nil {
		return HistoryEntry{}, fmt.Errorf("failed to load chat history: %w", err)
	}
	var history []HistoryEntry
	if err := json.Unmarshal(data, &history); err != nil {
		return HistoryEntry{}, fmt.Errorf("failed to parse chat history: %w", err)
	}
	history = append(history, entry)

	out, err := marshalPretty(history)
	if err != nil {
		return HistoryEntry{}, fmt.Errorf("failed to encode chat history: %w", err)
	}
	if err := s.store.Upload(ctx, histPath, out, true); err != nil {
		return HistoryEntry{}, fmt.Errorf("failed to store chat history: %w", err)
	}
	return entry, nil
}

// History returns the raw history blob, unparsed.
func (s *Service) History(ctx context.Context, userID string) ([]byte, error) {
	data, err := s.store.Download(ctx, s.userPath(userID, ChatHistFileName))
	if err != nil {
		return nil, fmt.Errorf("failed to load chat history: %w", err)
	}
	return data, nil
}

// SignUp registers a new user: a fresh UUID whose history blob is seeded
// from the local seed file.
func (s *Service) SignUp(ctx context.Context, userID string) (string, error) {
	seed, err := os.ReadFile(s.seedPath)
	if err != nil {
		return "", fmt.Errorf("failed to read seed history: %w", err)
	}
	if err := s.store.Upload(ctx, s.userPath(userID, ChatHistFileName), seed, false); err != nil {
		return "", fmt.Errorf("failed to create history blob: %w", err)
	}
	return userID, nil
}

// Healthy reports whether the configured blob container exists.
func (s *Service) Healthy(ctx context.Context) (bool, error) {
	return s.store.ContainerExists(ctx)
}

// SetSchedule stores the global reminder schedule string verbatim.
func (s *Service) SetSchedule(ctx context.Context, schedule string) error {
	if err := s.store.Upload(ctx, ScheduleBlobName, []byte(schedule), true); err != nil {
		return fmt.Errorf("failed to store schedule: %w", err)
	}
	return nil
}

// Schedule returns the stored global schedule string, trimmed.
func (s *Service) Schedule(ctx context.Context) (string, error) {
	data, err := s.store.Download(ctx, ScheduleBlobName)
	if err != nil {
		return "", fmt.Errorf("failed to load schedule: %w", err)
	}
	return strings.TrimSpace(string(data)), nil
}

// SetReminder synthesizes the message to the fixed local audio file and
// uploads it to the user's folder under the same name.
func (s *Service) SetReminder(ctx context.Context, userID, message string) error {
	if err := s.tts.Synthesize(ctx, message, ReminderFileName); err != nil {
		return fmt.Errorf("speech synthesis failed: %w", err)
	}
	audio, err := os.ReadFile(ReminderFileName)
	if err != nil {
		return fmt.Errorf("failed to read synthesized audio: %w", err)
	}
	if err := s.store.Upload(ctx, s.userPath(userID, ReminderFileName), audio, true); err != nil {
		return fmt.Errorf("failed to upload audio: %w", err)
	}
	return nil
}

// Audio returns the named audio blob from the user's folder.
func (s *Service) Audio(ctx context.Context, userID, filename string) ([]byte, error) {
	data, err := s.store.Download(ctx, s.userPath(userID, filename))
	if err != nil {
		return nil, fmt.Errorf("failed to download audio: %w", err)
	}
	return data, nil
}

// CreateImage renders one image for the prompt and returns its bytes.
func (s *Service) CreateImage(ctx context.Context, prompt string) ([]byte, error) {
	return s.images.Generate(ctx, prompt)
}

// parseTodoList decodes and validates the model's to-do output before it
// is allowed anywhere near the store.
func parseTodoList(raw string) ([]TodoItem, error) {
	dec := json.NewDecoder(strings.NewReader(raw))
	dec.DisallowUnknownFields()
	var items []TodoItem
	if err := dec.Decode(&items); err != nil {
		return nil, fmt.Errorf("model output is not a to-do list: %w", err)
	}
	for i, item := range items {
		if err := item.Validate(); err != nil {
			return nil, fmt.Errorf("to-do entry %d: %w", i, err)
		}
	}
	return items, nil
}

// marshalPretty renders 4-space-indented JSON with HTML escaping off so
// Korean text survives unescaped.
func marshalPretty(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}
