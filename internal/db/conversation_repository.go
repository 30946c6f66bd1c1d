package db

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/DustinYates/cheatah-sub002/internal/models"

	"github.com/google/uuid"
)

// ConversationRepository defines the interface for conversation data access
type ConversationRepository interface {
	CreateThread(leadID string, thread *models.ConversationThread) error
	AppendMessage(conversationID string, msg models.Message) error
	FetchByLead(leadID string) (*models.ConversationFetchResult, error)
}

// conversationRepository implements ConversationRepository over SQLite
type conversationRepository struct {
	db *sql.DB
}

// NewConversationRepository creates a new ConversationRepository
func NewConversationRepository(db *sql.DB) ConversationRepository {
	return &conversationRepository{db: db}
}

// CreateThread stores a conversation thread and its messages for a lead
func (r *conversationRepository) CreateThread(leadID string, thread *models.ConversationThread) error {
	if leadID == "" {
		return fmt.Errorf("lead ID cannot be empty")
	}
	if thread == nil {
		return fmt.Errorf("thread cannot be nil")
	}

	if thread.ID == "" {
		thread.ID = uuid.New().String()
	}

	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(
		"INSERT INTO conversations (id, lead_id, channel, created_at) VALUES (?, ?, ?, ?)",
		thread.ID, leadID, thread.Channel, time.Now().Unix(),
	)
	if err != nil {
		return fmt.Errorf("failed to create conversation: %w", err)
	}

	for _, msg := range thread.Messages {
		_, err = tx.Exec(
			"INSERT INTO conversation_messages (conversation_id, role, content, created_at) VALUES (?, ?, ?, ?)",
			thread.ID, msg.Role, msg.Content, msg.CreatedAt,
		)
		if err != nil {
			return fmt.Errorf("failed to store message: %w", err)
		}
	}

	return tx.Commit()
}

// AppendMessage adds one message to an existing conversation
func (r *conversationRepository) AppendMessage(conversationID string, msg models.Message) error {
	if conversationID == "" {
		return fmt.Errorf("conversation ID cannot be empty")
	}

	_, err := r.db.Exec(
		"INSERT INTO conversation_messages (conversation_id, role, content, created_at) VALUES (?, ?, ?, ?)",
		conversationID, msg.Role, msg.Content, msg.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to append message: %w", err)
	}

	return nil
}

// FetchByLead loads all conversation threads of a lead in the modern
// multi-thread fetch shape. A lead with no conversations yields nil so the
// caller treats it the same as a failed fetch: zero threads.
func (r *conversationRepository) FetchByLead(leadID string) (*models.ConversationFetchResult, error) {
	if leadID == "" {
		return nil, fmt.Errorf("lead ID cannot be empty")
	}

	rows, err := r.db.Query(
		"SELECT id, channel FROM conversations WHERE lead_id = ? ORDER BY created_at, id",
		leadID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch conversations: %w", err)
	}
	defer rows.Close()

	var threads []models.ConversationThread
	for rows.Next() {
		var thread models.ConversationThread
		var channel sql.NullString
		if err := rows.Scan(&thread.ID, &channel); err != nil {
			return nil, fmt.Errorf("failed to scan conversation: %w", err)
		}
		thread.Channel = channel.String
		threads = append(threads, thread)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read conversations: %w", err)
	}

	if len(threads) == 0 {
		return nil, nil
	}

	for i := range threads {
		msgs, err := r.fetchMessages(threads[i].ID)
		if err != nil {
			return nil, err
		}
		threads[i].Messages = msgs
	}

	return &models.ConversationFetchResult{Conversations: threads}, nil
}

func (r *conversationRepository) fetchMessages(conversationID string) ([]models.Message, error) {
	rows, err := r.db.Query(
		"SELECT role, content, created_at FROM conversation_messages WHERE conversation_id = ? ORDER BY id",
		conversationID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch messages: %w", err)
	}
	defer rows.Close()

	var msgs []models.Message
	for rows.Next() {
		var msg models.Message
		if err := rows.Scan(&msg.Role, &msg.Content, &msg.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan message: %w", err)
		}
		msgs = append(msgs, msg)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read messages: %w", err)
	}

	return msgs, nil
}
