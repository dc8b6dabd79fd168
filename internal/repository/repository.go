package repository

// GenericRepository is the base CRUD surface shared by all entities.
type GenericRepository[T any] interface {
	Create(entity *T) error
	FindByID(id uint) (*T, error)
	FindAll() ([]T, error)
	Update(entity *T) error
	Delete(id uint) error
}

// OwnedRepository scopes CRUD to an owning user. FindByIDForUser returns
// (nil, nil) when no row matches; DeleteForUser reports whether a row was
// actually removed.
type OwnedRepository[T any] interface {
	GenericRepository[T]
	FindByIDForUser(id, userID uint) (*T, error)
	ListPageForUser(userID, cursorID uint, direction string, limit int) ([]T, bool, error)
	DeleteForUser(id, userID uint) (bool, error)
}
