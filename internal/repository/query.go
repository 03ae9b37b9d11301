package repository

import "slices"

// Field поле позиции, по которому строится условие
type Field string

const (
	FieldOwners   Field = "owners"
	FieldQuantity Field = "quantity"
)

// Op оператор сравнения в условии
type Op int

const (
	// OpEq точное совпадение значения
	OpEq Op = iota
	// OpContains поле-множество содержит значение
	OpContains
	// OpGt значение поля строго больше
	OpGt
)

// Condition одно условие запроса: Field Op Value
type Condition struct {
	Field Field
	Op    Op
	Value any
}

// Query конъюнкция условий. Пустой Query выбирает все позиции
type Query struct {
	Conditions []Condition
}

// Where возвращает копию запроса с добавленным условием
func (q Query) Where(c Condition) Query {
	conds := make([]Condition, 0, len(q.Conditions)+1)
	conds = append(conds, q.Conditions...)
	conds = append(conds, c)
	return Query{Conditions: conds}
}

// OwnedBy условие "owner входит в владельцев позиции"
func OwnedBy(owner string) Condition {
	return Condition{Field: FieldOwners, Op: OpContains, Value: owner}
}

// InStock условие "quantity > 0"
func InStock() Condition {
	return Condition{Field: FieldQuantity, Op: OpGt, Value: 0}
}

// BuildQuery преобразует фильтр запроса в запрос к хранилищу
// Ограничение по владельцу добавляется всегда, ограничение quantity > 0
// добавляется, если IncludeEmpty не задан или равен false
func BuildQuery(f ListFilter) Query {
	q := Query{}.Where(OwnedBy(f.Owner))
	if f.IncludeEmpty == nil || !*f.IncludeEmpty {
		q = q.Where(InStock())
	}
	return q
}

// Matches вычисляет запрос над позицией в памяти процесса
func (q Query) Matches(item Item) bool {
	for _, c := range q.Conditions {
		if !c.matches(item) {
			return false
		}
	}
	return true
}

func (c Condition) matches(item Item) bool {
	switch c.Field {
	case FieldOwners:
		owner, ok := c.Value.(string)
		if !ok {
			return false
		}
		switch c.Op {
		case OpContains:
			return slices.Contains(item.Owners, owner)
		case OpEq:
			return len(item.Owners) == 1 && item.Owners[0] == owner
		}
	case FieldQuantity:
		n, ok := c.Value.(int)
		if !ok {
			return false
		}
		switch c.Op {
		case OpEq:
			return item.Quantity == n
		case OpGt:
			return item.Quantity > n
		}
	}
	return false
}
