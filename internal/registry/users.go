package registry

import (
	"strconv"
	"strings"

	"github.com/saifltr/library-management-system/internal/domain/models"
	"github.com/saifltr/library-management-system/internal/logger"
	regerrors "github.com/saifltr/library-management-system/internal/registry/errors"
	"github.com/saifltr/library-management-system/internal/storage"
)

// UserRegistry owns the ordered user collection and the id counter. Ids are
// assigned from the counter and never reused, even after deletes.
type UserRegistry struct {
	store  storage.Store
	users  []*models.User
	nextID int
}

func NewUserRegistry(store storage.Store) (*UserRegistry, error) {
	var users []*models.User
	if err := store.Load(&users); err != nil {
		return nil, err
	}
	return &UserRegistry{
		store:  store,
		users:  users,
		nextID: seedNextID(users),
	}, nil
}

// seedNextID is max(numeric ids)+1, or 1 for an empty collection. Ids that do
// not parse as numbers are skipped.
func seedNextID(users []*models.User) int {
	next := 1
	for _, user := range users {
		id, err := strconv.Atoi(user.UserID)
		if err != nil {
			continue
		}
		if id >= next {
			next = id + 1
		}
	}
	return next
}

func (ur *UserRegistry) persist() error {
	return ur.store.Save(ur.users)
}

func (ur *UserRegistry) Add(name string) (*models.User, error) {
	log := logger.Get()
	if name == "" {
		return nil, regerrors.ErrUserNameRequired
	}
	user := &models.User{
		Name:   name,
		UserID: strconv.Itoa(ur.nextID),
	}
	ur.users = append(ur.users, user)
	ur.nextID++
	if err := ur.persist(); err != nil {
		return nil, err
	}
	log.Debug().Str("uid", user.UserID).Str("name", name).Msg("user added")
	return user, nil
}

// GetByID returns nil when no user carries the given id.
func (ur *UserRegistry) GetByID(userID string) *models.User {
	for _, user := range ur.users {
		if user.UserID == userID {
			return user
		}
	}
	return nil
}

func (ur *UserRegistry) List() []*models.User {
	return ur.users
}

func (ur *UserRegistry) Update(userID, name string) (*models.User, error) {
	user := ur.GetByID(userID)
	if user == nil {
		return nil, regerrors.ErrUserNotFound
	}
	user.Name = name
	if err := ur.persist(); err != nil {
		return nil, err
	}
	return user, nil
}

// Delete removes the user but does not cascade into active checkouts; a
// checkout left dangling is dropped on the coordinator's next reload.
func (ur *UserRegistry) Delete(userID string) error {
	log := logger.Get()
	for i, user := range ur.users {
		if user.UserID == userID {
			ur.users = append(ur.users[:i], ur.users[i+1:]...)
			if err := ur.persist(); err != nil {
				return err
			}
			log.Debug().Str("uid", userID).Msg("user deleted")
			return nil
		}
	}
	return regerrors.ErrUserNotFound
}

func (ur *UserRegistry) Search(name string) []*models.User {
	name = strings.ToLower(name)
	var result []*models.User
	for _, user := range ur.users {
		if strings.Contains(strings.ToLower(user.Name), name) {
			result = append(result, user)
		}
	}
	return result
}
