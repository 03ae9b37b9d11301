package mongo

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/shestoi/GoBigTech/warehouse/internal/repository"
)

var fieldKeys = map[repository.Field]string{
	repository.FieldOwners:   "user_ids",
	repository.FieldQuantity: "quantity",
}

// toFilter переводит Query в фильтр MongoDB
// Для поля-массива user_ids условие {user_ids: owner} означает "массив содержит owner"
func toFilter(q repository.Query) (bson.D, error) {
	filter := bson.D{}
	for _, c := range q.Conditions {
		key, ok := fieldKeys[c.Field]
		if !ok {
			return nil, fmt.Errorf("unsupported query field %q", c.Field)
		}

		switch c.Op {
		case repository.OpContains:
			filter = append(filter, bson.E{Key: key, Value: c.Value})
		case repository.OpEq:
			if c.Field == repository.FieldOwners {
				filter = append(filter, bson.E{Key: key, Value: bson.A{c.Value}})
				continue
			}
			filter = append(filter, bson.E{Key: key, Value: c.Value})
		case repository.OpGt:
			filter = append(filter, bson.E{Key: key, Value: bson.M{"$gt": c.Value}})
		default:
			return nil, fmt.Errorf("unsupported query operator %d", c.Op)
		}
	}
	return filter, nil
}
