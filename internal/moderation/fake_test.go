package moderation

import (
	"sync"

	"modbot/internal/models"
)

type editCall struct {
	ChatID    int64
	MessageID int64
	Text      string
}

type answerCall struct {
	CallbackID string
	Text       string
}

type banCall struct {
	ChatID int64
	UserID int64
}

type deleteCall struct {
	ChatID    int64
	MessageID int64
}

// fakeAPI records platform calls and returns the injected errors. Safe for
// concurrent use so the racing double-click tests can share one instance.
type fakeAPI struct {
	mu sync.Mutex

	forwardErr  error
	promptErr   error
	deleteErr   error
	banErr      error
	editErr     error
	answerErr   error
	replyErr    error
	markdownErr error
	leaveErr    error

	nextForwardID int64
	nextPromptID  int64

	forwards  int
	prompts   []string
	deletes   []deleteCall
	bans      []banCall
	edits     []editCall
	answers   []answerCall
	replies   []string
	markdowns []string
	leaves    []int64

	adminsByChat map[int64][]int64
	adminsErr    map[int64]error
}

func newFakeAPI() *fakeAPI {
	return &fakeAPI{
		nextForwardID: 500,
		nextPromptID:  900,
		adminsByChat:  make(map[int64][]int64),
		adminsErr:     make(map[int64]error),
	}
}

func (f *fakeAPI) ForwardMessage(toChatID, fromChatID, messageID int64) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.forwardErr != nil {
		return 0, f.forwardErr
	}
	f.forwards++
	return f.nextForwardID, nil
}

func (f *fakeAPI) SendMessage(chatID int64, text string) (int64, error) {
	return 0, nil
}

func (f *fakeAPI) SendReply(chatID, replyToMessageID int64, text string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.replyErr != nil {
		return f.replyErr
	}
	f.replies = append(f.replies, text)
	return nil
}

func (f *fakeAPI) SendMarkdown(chatID int64, text string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.markdownErr != nil {
		return f.markdownErr
	}
	f.markdowns = append(f.markdowns, text)
	return nil
}

func (f *fakeAPI) SendDecisionPrompt(chatID, replyToMessageID int64, text, spamPayload, noSpamPayload string) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.promptErr != nil {
		return 0, f.promptErr
	}
	f.prompts = append(f.prompts, spamPayload)
	return f.nextPromptID, nil
}

func (f *fakeAPI) DeleteMessage(chatID, messageID int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deletes = append(f.deletes, deleteCall{ChatID: chatID, MessageID: messageID})
	return nil
}

func (f *fakeAPI) BanChatMember(chatID, userID int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.banErr != nil {
		return f.banErr
	}
	f.bans = append(f.bans, banCall{ChatID: chatID, UserID: userID})
	return nil
}

func (f *fakeAPI) EditMessageText(chatID, messageID int64, text string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.editErr != nil {
		return f.editErr
	}
	f.edits = append(f.edits, editCall{ChatID: chatID, MessageID: messageID, Text: text})
	return nil
}

func (f *fakeAPI) AnswerCallback(callbackID, text string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.answerErr != nil {
		return f.answerErr
	}
	f.answers = append(f.answers, answerCall{CallbackID: callbackID, Text: text})
	return nil
}

func (f *fakeAPI) LeaveChat(chatID int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.leaveErr != nil {
		return f.leaveErr
	}
	f.leaves = append(f.leaves, chatID)
	return nil
}

func (f *fakeAPI) GetChatAdministrators(chatID int64) ([]int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.adminsErr[chatID]; err != nil {
		return nil, err
	}
	return f.adminsByChat[chatID], nil
}

// fakeStore records audit inserts.
type fakeStore struct {
	mu      sync.Mutex
	err     error
	records []models.DecisionRecord
}

func (s *fakeStore) Insert(record models.DecisionRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	s.records = append(s.records, record)
	return nil
}
