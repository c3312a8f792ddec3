package repository

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"
	"strings"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// ErrNotFound is returned when a document id does not exist in the collection.
var ErrNotFound = errors.New("document not found")

// Repository maps a typed entity to a named Firestore collection. All
// operations block until the underlying write or read has completed; store
// errors are wrapped, never retried.
type Repository[T any] struct {
	client *firestore.Client
	name   string
}

func New[T any](client *firestore.Client, collection string) *Repository[T] {
	return &Repository[T]{client: client, name: collection}
}

func (r *Repository[T]) Collection() string {
	return r.name
}

// Save persists a new document. The store assigns the id; creation and update
// times are stamped server-side. Returns the new document id.
func (r *Repository[T]) Save(ctx context.Context, entity *T) (string, error) {
	ref := r.client.Collection(r.name).NewDoc()

	data := toDocument(entity)
	data["id"] = ref.ID
	data["createdAt"] = firestore.ServerTimestamp
	data["updatedAt"] = firestore.ServerTimestamp

	if _, err := ref.Set(ctx, data); err != nil {
		log.Printf("[REPO] [ERROR] save %s failed: %v", r.name, err)
		return "", fmt.Errorf("saving document to %s: %w", r.name, err)
	}
	return ref.ID, nil
}

// Update merges the entity's set fields into the existing document and stamps
// a server-side update time. Unset (zero-valued, omitempty-tagged) fields are
// left untouched; id and createdAt are never written.
func (r *Repository[T]) Update(ctx context.Context, id string, entity *T) error {
	data := updateDocument(entity)

	ref := r.client.Collection(r.name).Doc(id)
	if _, err := ref.Set(ctx, data, firestore.MergeAll); err != nil {
		log.Printf("[REPO] [ERROR] update %s/%s failed: %v", r.name, id, err)
		return fmt.Errorf("updating document %s/%s: %w", r.name, id, err)
	}
	return nil
}

func (r *Repository[T]) Delete(ctx context.Context, id string) error {
	if _, err := r.client.Collection(r.name).Doc(id).Delete(ctx); err != nil {
		log.Printf("[REPO] [ERROR] delete %s/%s failed: %v", r.name, id, err)
		return fmt.Errorf("deleting document %s/%s: %w", r.name, id, err)
	}
	return nil
}

func (r *Repository[T]) FindByID(ctx context.Context, id string) (*T, error) {
	doc, err := r.client.Collection(r.name).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("finding document %s/%s: %w", r.name, id, err)
	}

	var entity T
	if err := doc.DataTo(&entity); err != nil {
		return nil, fmt.Errorf("decoding document %s/%s: %w", r.name, id, err)
	}
	return &entity, nil
}

func (r *Repository[T]) FindAll(ctx context.Context) ([]*T, error) {
	return r.collect(r.client.Collection(r.name).Documents(ctx))
}

// FindByField runs an equality filter on a single field. No range, sort or
// compound predicates; anything richer is filtered in memory by the caller.
func (r *Repository[T]) FindByField(ctx context.Context, field string, value interface{}) ([]*T, error) {
	query := r.client.Collection(r.name).Where(field, "==", value)
	return r.collect(query.Documents(ctx))
}

// FindByArrayContains matches documents whose array field contains value.
func (r *Repository[T]) FindByArrayContains(ctx context.Context, field string, value interface{}) ([]*T, error) {
	query := r.client.Collection(r.name).Where(field, "array-contains", value)
	return r.collect(query.Documents(ctx))
}

func (r *Repository[T]) collect(iter *firestore.DocumentIterator) ([]*T, error) {
	defer iter.Stop()

	entities := make([]*T, 0)
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("iterating %s: %w", r.name, err)
		}

		var entity T
		if err := doc.DataTo(&entity); err != nil {
			return nil, fmt.Errorf("decoding document %s/%s: %w", r.name, doc.Ref.ID, err)
		}
		entities = append(entities, &entity)
	}
	return entities, nil
}

// updateDocument builds the merge map for an update: set fields only, never
// id or createdAt, always a fresh server-side updatedAt.
func updateDocument(entity interface{}) map[string]interface{} {
	data := toDocument(entity)
	delete(data, "id")
	delete(data, "createdAt")
	data["updatedAt"] = firestore.ServerTimestamp
	return data
}

// toDocument converts an entity into a Firestore field map using the entity's
// firestore struct tags. Zero-valued fields tagged omitempty are dropped,
// which is what makes Update a partial merge instead of an overwrite.
func toDocument(entity interface{}) map[string]interface{} {
	data := map[string]interface{}{}

	value := reflect.ValueOf(entity)
	for value.Kind() == reflect.Pointer {
		value = value.Elem()
	}
	if value.Kind() != reflect.Struct {
		return data
	}

	structType := value.Type()
	for i := 0; i < structType.NumField(); i++ {
		field := structType.Field(i)
		if !field.IsExported() {
			continue
		}

		name, omitEmpty := parseFirestoreTag(field)
		if name == "-" {
			continue
		}

		fieldValue := value.Field(i)
		if omitEmpty && fieldValue.IsZero() {
			continue
		}
		data[name] = fieldValue.Interface()
	}
	return data
}

func parseFirestoreTag(field reflect.StructField) (name string, omitEmpty bool) {
	tag := field.Tag.Get("firestore")
	if tag == "" {
		return field.Name, false
	}

	parts := strings.Split(tag, ",")
	name = parts[0]
	if name == "" {
		name = field.Name
	}
	for _, opt := range parts[1:] {
		if opt == "omitempty" {
			omitEmpty = true
		}
	}
	return name, omitEmpty
}
