package contact

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Repository interface {
	Create(ctx context.Context, inq Inquiry) error
	List(ctx context.Context, filter ListFilter, limit, offset int64) ([]Inquiry, error)
	Count(ctx context.Context, filter ListFilter) (int64, error)
	GetByID(ctx context.Context, id string) (Inquiry, error)
	UpdateStatus(ctx context.Context, id string, status string, now time.Time) (Inquiry, error)
}

type MongoRepository struct {
	col *mongo.Collection
}

func NewMongoRepository(col *mongo.Collection) *MongoRepository {
	return &MongoRepository{col: col}
}

func (r *MongoRepository) Create(ctx context.Context, inq Inquiry) error {
	_, err := r.col.InsertOne(ctx, inq)
	return err
}

func (r *MongoRepository) List(ctx context.Context, filter ListFilter, limit, offset int64) ([]Inquiry, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(limit).
		SetSkip(offset)

	cursor, err := r.col.Find(ctx, filterToBSON(filter), opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	items := make([]Inquiry, 0)
	for cursor.Next(ctx) {
		var inq Inquiry
		if err := cursor.Decode(&inq); err != nil {
			return nil, err
		}
		items = append(items, inq)
	}
	if err := cursor.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *MongoRepository) Count(ctx context.Context, filter ListFilter) (int64, error) {
	return r.col.CountDocuments(ctx, filterToBSON(filter))
}

func (r *MongoRepository) GetByID(ctx context.Context, id string) (Inquiry, error) {
	var inq Inquiry
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&inq); err != nil {
		return Inquiry{}, err
	}
	return inq, nil
}

func (r *MongoRepository) UpdateStatus(ctx context.Context, id string, status string, now time.Time) (Inquiry, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	update := bson.M{"$set": bson.M{"status": status, "updated_at": now}}

	var updated Inquiry
	if err := r.col.FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(&updated); err != nil {
		return Inquiry{}, err
	}
	return updated, nil
}

func filterToBSON(filter ListFilter) bson.M {
	query := bson.M{}
	if filter.Status != "" {
		query["status"] = filter.Status
	}
	if filter.Email != "" {
		query["email"] = filter.Email
	}
	return query
}

// MemoryRepository keeps inquiries in process memory. It backs deployments
// without Mongo, where submissions live only until restart and are relayed
// by email.
type MemoryRepository struct {
	mu    sync.RWMutex
	items map[string]Inquiry
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{items: make(map[string]Inquiry)}
}

func (r *MemoryRepository) Create(ctx context.Context, inq Inquiry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[inq.ID] = inq
	return nil
}

func (r *MemoryRepository) List(ctx context.Context, filter ListFilter, limit, offset int64) ([]Inquiry, error) {
	matched := r.matching(filter)
	if offset >= int64(len(matched)) {
		return []Inquiry{}, nil
	}
	end := offset + limit
	if end > int64(len(matched)) {
		end = int64(len(matched))
	}
	return matched[offset:end], nil
}

func (r *MemoryRepository) Count(ctx context.Context, filter ListFilter) (int64, error) {
	return int64(len(r.matching(filter))), nil
}

func (r *MemoryRepository) GetByID(ctx context.Context, id string) (Inquiry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	inq, ok := r.items[id]
	if !ok {
		return Inquiry{}, mongo.ErrNoDocuments
	}
	return inq, nil
}

func (r *MemoryRepository) UpdateStatus(ctx context.Context, id string, status string, now time.Time) (Inquiry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	inq, ok := r.items[id]
	if !ok {
		return Inquiry{}, mongo.ErrNoDocuments
	}
	inq.Status = status
	inq.UpdatedAt = now
	r.items[id] = inq
	return inq, nil
}

// matching returns filtered inquiries newest first.
func (r *MemoryRepository) matching(filter ListFilter) []Inquiry {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Inquiry, 0, len(r.items))
	for _, inq := range r.items {
		if filter.Status != "" && inq.Status != filter.Status {
			continue
		}
		if filter.Email != "" && !strings.EqualFold(inq.Email, filter.Email) {
			continue
		}
		out = append(out, inq)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID > out[j].ID
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}
