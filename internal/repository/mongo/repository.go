package mongo

import (
	"context"
	"errors"
	"fmt"
	"iter"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/shestoi/GoBigTech/warehouse/internal/repository"
)

// DefaultCollection имя коллекции с позициями склада
const DefaultCollection = "items"

// ItemDocument представляет документ в коллекции MongoDB
type ItemDocument struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Name      string             `bson:"name"`
	Quantity  int                `bson:"quantity"`
	Tags      []string           `bson:"tags"`
	UserIDs   []string           `bson:"user_ids"`
	CreatedAt time.Time          `bson:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at"`
}

func (d ItemDocument) toItem() repository.Item {
	return repository.Item{
		ID:       d.ID.Hex(),
		Name:     d.Name,
		Quantity: d.Quantity,
		Tags:     d.Tags,
		Owners:   d.UserIDs,
	}
}

// Repository реализует ItemRepository используя MongoDB
type Repository struct {
	col *mongo.Collection
	now func() time.Time
}

// NewRepository создаёт новый MongoDB репозиторий
// Создаёт индекс на user_ids при инициализации: все выборки ограничены владельцем
func NewRepository(client *mongo.Client, dbName, collection string) *Repository {
	if collection == "" {
		collection = DefaultCollection
	}
	col := client.Database(dbName).Collection(collection)

	indexModel := mongo.IndexModel{
		Keys: bson.D{{Key: "user_ids", Value: 1}, {Key: "quantity", Value: 1}},
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// Если индекс уже существует - игнорируем ошибку
	_, _ = col.Indexes().CreateOne(ctx, indexModel)

	return &Repository{
		col: col,
		now: time.Now,
	}
}

// FindByIDAndOwner получает позицию по _id и владельцу
func (r *Repository) FindByIDAndOwner(ctx context.Context, id, owner string) (repository.Item, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		// Невалидный ID не может принадлежать ни одному документу
		return repository.Item{}, repository.ErrNotFound
	}

	var doc ItemDocument
	err = r.col.FindOne(ctx, bson.M{"_id": oid, "user_ids": owner}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return repository.Item{}, repository.ErrNotFound
		}
		return repository.Item{}, err
	}

	return doc.toItem(), nil
}

// Scan выполняет Find при каждом проходе по последовательности
// Курсор закрывается, когда потребитель прерывает проход или документы заканчиваются
func (r *Repository) Scan(ctx context.Context, q repository.Query) iter.Seq2[repository.Item, error] {
	return func(yield func(repository.Item, error) bool) {
		filter, err := toFilter(q)
		if err != nil {
			yield(repository.Item{}, err)
			return
		}

		cur, err := r.col.Find(ctx, filter)
		if err != nil {
			yield(repository.Item{}, err)
			return
		}
		defer cur.Close(ctx)

		for cur.Next(ctx) {
			var doc ItemDocument
			if err := cur.Decode(&doc); err != nil {
				yield(repository.Item{}, err)
				return
			}
			if !yield(doc.toItem(), nil) {
				return
			}
		}
		if err := cur.Err(); err != nil {
			yield(repository.Item{}, err)
		}
	}
}

// Insert сохраняет новый документ, _id генерируется на стороне приложения
func (r *Repository) Insert(ctx context.Context, item repository.Item) (repository.Item, error) {
	now := r.now().UTC()
	doc := ItemDocument{
		ID:        primitive.NewObjectID(),
		Name:      item.Name,
		Quantity:  item.Quantity,
		Tags:      nonNil(item.Tags),
		UserIDs:   nonNil(item.Owners),
		CreatedAt: now,
		UpdatedAt: now,
	}

	if _, err := r.col.InsertOne(ctx, doc); err != nil {
		return repository.Item{}, err
	}

	return doc.toItem(), nil
}

// Remove удаляет документ по _id без дополнительных проверок
func (r *Repository) Remove(ctx context.Context, item repository.Item) error {
	oid, err := primitive.ObjectIDFromHex(item.ID)
	if err != nil {
		return fmt.Errorf("invalid item id %q: %w", item.ID, err)
	}

	_, err = r.col.DeleteOne(ctx, bson.M{"_id": oid})
	return err
}

// UpdateQuantityIfOwner атомарно обновляет quantity документа с совпавшими _id и владельцем
// Возвращает MatchedCount: повторная установка того же значения тоже считается совпадением
func (r *Repository) UpdateQuantityIfOwner(ctx context.Context, id, owner string, quantity int) (int64, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return 0, nil
	}

	filter := bson.M{
		"_id":      oid,
		"user_ids": owner,
	}
	update := bson.M{
		"$set": bson.M{
			"quantity":   quantity,
			"updated_at": r.now().UTC(),
		},
	}

	res, err := r.col.UpdateOne(ctx, filter, update)
	if err != nil {
		return 0, err
	}

	return res.MatchedCount, nil
}

// Connect подключается к MongoDB и проверяет соединение
func Connect(ctx context.Context, uri string) (*mongo.Client, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}

	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, err
	}

	return client, nil
}

func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
