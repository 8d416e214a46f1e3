package session_mongo_repo

import (
	"bookshelf_backend/internal/model"
	"bookshelf_backend/internal/repository"
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const Collection = "refresh_tokens"

// document - _id совпадает с ID пользователя, уникальность держит сам Mongo
type document struct {
	UserID       string `bson:"_id"`
	RefreshToken string `bson:"token"`
	ExpiresAt    int64  `bson:"expiry"`
}

type repo struct {
	col *mongo.Collection
}

func NewSessionRepository(col *mongo.Collection) repository.SessionRepository {
	return &repo{col: col}
}

func (r *repo) GetSession(ctx context.Context, userID string) (*model.Session, error) {
	var doc document
	err := r.col.FindOne(ctx, bson.M{"_id": userID}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrSessionNotFound
		}
		return nil, err
	}

	return &model.Session{
		UserID:       doc.UserID,
		RefreshToken: doc.RefreshToken,
		ExpiresAt:    doc.ExpiresAt,
	}, nil
}

// UpsertSession - ReplaceOne с upsert по _id, одна операция на документ.
// Два параллельных upsert могут столкнуться на вставке, проигравший повторяет
// запрос и перезаписывает документ.
func (r *repo) UpsertSession(ctx context.Context, session *model.Session) error {
	doc := document{
		UserID:       session.UserID,
		RefreshToken: session.RefreshToken,
		ExpiresAt:    session.ExpiresAt,
	}
	opts := options.Replace().SetUpsert(true)

	_, err := r.col.ReplaceOne(ctx, bson.M{"_id": session.UserID}, doc, opts)
	if mongo.IsDuplicateKeyError(err) {
		_, err = r.col.ReplaceOne(ctx, bson.M{"_id": session.UserID}, doc, opts)
	}
	return err
}

func (r *repo) DeleteSession(ctx context.Context, userID string) error {
	_, err := r.col.DeleteOne(ctx, bson.M{"_id": userID})
	return err
}
