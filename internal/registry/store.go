package registry

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/tidwall/buntdb"
)

const (
	// 'version' of the database schema
	keySchemaVersion = "db.version"
	// latest schema of the db
	latestDbSchema = "1"
	// account records, one key per account name
	keyAccountPrefix = "account "
)

var (
	ErrAccountExists   = errors.New("account already exists")
	ErrAccountNotFound = errors.New("account not found")
	ErrNetworkExists   = errors.New("network already registered for account")
	ErrNetworkNotFound = errors.New("network not registered for account")
	ErrInvalidName     = errors.New("names must be non-empty and contain no spaces")
	ErrInvalidNetwork  = errors.New("invalid network record")
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// excludesall cannot take a space as its parameter
	_ = v.RegisterValidation("nospace", func(fl validator.FieldLevel) bool {
		return !strings.ContainsAny(fl.Field().String(), " \t")
	})
	return v
}

// NetworkRecord is the stored form of a network registration.
type NetworkRecord struct {
	Name        string `json:"name"`
	Server      string `json:"server" validate:"required,hostname_rfc1123|ip"`
	Port        int    `json:"port" validate:"min=1,max=65535"`
	TLS         bool   `json:"tls,omitempty"`
	TLSInsecure bool   `json:"tls_insecure,omitempty"`
	Nick        string `json:"nick" validate:"required,printascii,nospace"`
	Username    string `json:"username,omitempty"`
	Realname    string `json:"realname,omitempty"`
	Password    string `json:"password,omitempty"`
	SASLUser    string `json:"sasl_user,omitempty"`
	SASLPass    string `json:"sasl_pass,omitempty"`
}

// AccountRecord is the stored form of an account. Networks keep registration order.
type AccountRecord struct {
	Name     string          `json:"name"`
	Networks []NetworkRecord `json:"networks"`
}

// Network returns the registration with the given name, compared case-insensitively.
func (a *AccountRecord) Network(name string) (int, bool) {
	for i, n := range a.Networks {
		if strings.EqualFold(n.Name, name) {
			return i, true
		}
	}
	return -1, false
}

// Store persists accounts and their network registrations in buntdb.
type Store struct {
	db *buntdb.DB
}

// OpenStore opens (or creates) the datastore at path. ":memory:" keeps it in memory.
func OpenStore(path string) (*Store, error) {
	db, err := buntdb.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open datastore %s: %w", path, err)
	}

	err = db.Update(func(tx *buntdb.Tx) error {
		version, err := tx.Get(keySchemaVersion)
		if errors.Is(err, buntdb.ErrNotFound) {
			_, _, err = tx.Set(keySchemaVersion, latestDbSchema, nil)
			return err
		}
		if err != nil {
			return err
		}
		if version != latestDbSchema {
			return fmt.Errorf("unsupported schema version %s (want %s)", version, latestDbSchema)
		}
		return nil
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("init datastore %s: %w", path, err)
	}

	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

func validName(name string) bool {
	return name != "" && !strings.ContainsAny(name, " \t\r\n")
}

func accountKey(name string) string {
	return keyAccountPrefix + name
}

func getAccount(tx *buntdb.Tx, name string) (*AccountRecord, error) {
	raw, err := tx.Get(accountKey(name))
	if errors.Is(err, buntdb.ErrNotFound) {
		return nil, ErrAccountNotFound
	}
	if err != nil {
		return nil, err
	}
	var rec AccountRecord
	if err := json.Unmarshal([]byte(raw), &rec); err != nil {
		return nil, fmt.Errorf("decode account %s: %w", name, err)
	}
	return &rec, nil
}

func putAccount(tx *buntdb.Tx, rec *AccountRecord) error {
	raw, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("encode account %s: %w", rec.Name, err)
	}
	_, _, err = tx.Set(accountKey(rec.Name), string(raw), nil)
	return err
}

// AddAccount creates an empty account.
func (s *Store) AddAccount(name string) error {
	if !validName(name) {
		return ErrInvalidName
	}
	return s.db.Update(func(tx *buntdb.Tx) error {
		if _, err := tx.Get(accountKey(name)); err == nil {
			return ErrAccountExists
		}
		return putAccount(tx, &AccountRecord{Name: name, Networks: []NetworkRecord{}})
	})
}

// RemoveAccount deletes an account and all of its registrations.
func (s *Store) RemoveAccount(name string) error {
	return s.db.Update(func(tx *buntdb.Tx) error {
		_, err := tx.Delete(accountKey(name))
		if errors.Is(err, buntdb.ErrNotFound) {
			return ErrAccountNotFound
		}
		return err
	})
}

// AddNetwork appends a registration to the account. Network names are unique per
// account regardless of case.
func (s *Store) AddNetwork(account string, network NetworkRecord) error {
	if !validName(network.Name) {
		return ErrInvalidName
	}
	if err := validate.Struct(network); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidNetwork, err)
	}
	return s.db.Update(func(tx *buntdb.Tx) error {
		rec, err := getAccount(tx, account)
		if err != nil {
			return err
		}
		if _, exists := rec.Network(network.Name); exists {
			return ErrNetworkExists
		}
		rec.Networks = append(rec.Networks, network)
		return putAccount(tx, rec)
	})
}

// RemoveNetwork drops a registration from the account.
func (s *Store) RemoveNetwork(account, network string) error {
	return s.db.Update(func(tx *buntdb.Tx) error {
		rec, err := getAccount(tx, account)
		if err != nil {
			return err
		}
		idx, exists := rec.Network(network)
		if !exists {
			return ErrNetworkNotFound
		}
		rec.Networks = append(rec.Networks[:idx], rec.Networks[idx+1:]...)
		return putAccount(tx, rec)
	})
}

// Account loads a single account.
func (s *Store) Account(name string) (AccountRecord, error) {
	var rec *AccountRecord
	err := s.db.View(func(tx *buntdb.Tx) error {
		var err error
		rec, err = getAccount(tx, name)
		return err
	})
	if err != nil {
		return AccountRecord{}, err
	}
	return *rec, nil
}

// All returns every account in ascending name order.
func (s *Store) All() ([]AccountRecord, error) {
	var records []AccountRecord
	err := s.db.View(func(tx *buntdb.Tx) error {
		var decodeErr error
		err := tx.AscendKeys(keyAccountPrefix+"*", func(key, value string) bool {
			var rec AccountRecord
			if err := json.Unmarshal([]byte(value), &rec); err != nil {
				decodeErr = fmt.Errorf("decode %s: %w", key, err)
				return false
			}
			records = append(records, rec)
			return true // continue looping through keys
		})
		if err != nil {
			return err
		}
		return decodeErr
	})
	if err != nil {
		return nil, err
	}
	return records, nil
}

// Snapshot builds an Accessor over the given records. lookup resolves the live
// identity for a registration; when it returns nil the registration is reported
// with its configured nick and no connection.
func Snapshot(records []AccountRecord, lookup func(account, network string) Identity) Static {
	accounts := make(Static, 0, len(records))
	for _, rec := range records {
		acct := Account{Name: rec.Name}
		for _, n := range rec.Networks {
			var id Identity
			if lookup != nil {
				id = lookup(rec.Name, n.Name)
			}
			if id == nil {
				id = Offline{Nickname: n.Nick}
			}
			acct.Networks = append(acct.Networks, NetworkRegistration{
				Account:  rec.Name,
				Network:  n.Name,
				Identity: id,
			})
		}
		accounts = append(accounts, acct)
	}
	return accounts
}
