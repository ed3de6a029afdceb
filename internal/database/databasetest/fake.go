// Package databasetest cung cấp collection giả lập cho unit test của service.
package databasetest

import (
	"context"
	"sync"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Call ghi lại một lần gọi tới FakeCollection.
type Call struct {
	Method string
	Arg    interface{} // filter or pipeline
}

// FakeCollection satisfies database.Collection. Each method delegates to its
// func field; a nil field returns an empty result.
type FakeCollection struct {
	CollectionName string

	CountFunc     func(filter interface{}) (int64, error)
	AggregateFunc func(pipeline interface{}) ([]interface{}, error)
	FindFunc      func(filter interface{}, opts *options.FindOptions) ([]interface{}, error)
	FindOneFunc   func(filter interface{}) (interface{}, error)
	DistinctFunc  func(field string, filter interface{}) ([]interface{}, error)
	InsertOneFunc func(doc interface{}) (interface{}, error)

	mu    sync.Mutex
	calls []Call
}

func (f *FakeCollection) record(method string, arg interface{}) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, Call{Method: method, Arg: arg})
}

// Calls trả về bản sao các lần gọi đã ghi nhận.
func (f *FakeCollection) Calls() []Call {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]Call, len(f.calls))
	copy(out, f.calls)
	return out
}

func (f *FakeCollection) Name() string {
	if f.CollectionName == "" {
		return "fake"
	}
	return f.CollectionName
}

func (f *FakeCollection) CountDocuments(_ context.Context, filter interface{}, _ ...*options.CountOptions) (int64, error) {
	f.record("CountDocuments", filter)
	if f.CountFunc == nil {
		return 0, nil
	}
	return f.CountFunc(filter)
}

func (f *FakeCollection) Aggregate(_ context.Context, pipeline interface{}, _ ...*options.AggregateOptions) (*mongo.Cursor, error) {
	f.record("Aggregate", pipeline)
	var docs []interface{}
	if f.AggregateFunc != nil {
		var err error
		if docs, err = f.AggregateFunc(pipeline); err != nil {
			return nil, err
		}
	}
	return mongo.NewCursorFromDocuments(docs, nil, nil)
}

func (f *FakeCollection) Find(_ context.Context, filter interface{}, opts ...*options.FindOptions) (*mongo.Cursor, error) {
	f.record("Find", filter)
	var docs []interface{}
	if f.FindFunc != nil {
		var err error
		if docs, err = f.FindFunc(filter, options.MergeFindOptions(opts...)); err != nil {
			return nil, err
		}
	}
	return mongo.NewCursorFromDocuments(docs, nil, nil)
}

func (f *FakeCollection) FindOne(_ context.Context, filter interface{}, _ ...*options.FindOneOptions) *mongo.SingleResult {
	f.record("FindOne", filter)
	if f.FindOneFunc == nil {
		return mongo.NewSingleResultFromDocument(bson.D{}, mongo.ErrNoDocuments, nil)
	}
	doc, err := f.FindOneFunc(filter)
	if err != nil {
		return mongo.NewSingleResultFromDocument(bson.D{}, err, nil)
	}
	if doc == nil {
		return mongo.NewSingleResultFromDocument(bson.D{}, mongo.ErrNoDocuments, nil)
	}
	return mongo.NewSingleResultFromDocument(doc, nil, nil)
}

func (f *FakeCollection) Distinct(_ context.Context, field string, filter interface{}, _ ...*options.DistinctOptions) ([]interface{}, error) {
	f.record("Distinct", filter)
	if f.DistinctFunc == nil {
		return []interface{}{}, nil
	}
	return f.DistinctFunc(field, filter)
}

func (f *FakeCollection) InsertOne(_ context.Context, doc interface{}, _ ...*options.InsertOneOptions) (*mongo.InsertOneResult, error) {
	f.record("InsertOne", doc)
	if f.InsertOneFunc == nil {
		return &mongo.InsertOneResult{}, nil
	}
	id, err := f.InsertOneFunc(doc)
	if err != nil {
		return nil, err
	}
	return &mongo.InsertOneResult{InsertedID: id}, nil
}
