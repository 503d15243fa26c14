//go:generate go run go.uber.org/mock/mockgen -source=profile_repository.go -destination=../../mocks/mock_profile_repository.go -package=mocks
package storage

import (
	"fmt"
	"strings"
	"teammate-chat/domain/chat"
	"teammate-chat/errors"
	pb "teammate-chat/proto/storage"

	"github.com/dgraph-io/badger/v4"
	"google.golang.org/protobuf/proto"
)

// IProfileDirectory is the read side the chat core needs from profiles:
// a display name for rendering, never for identity or ordering.
type IProfileDirectory interface {
	LookupDisplayName(p chat.ParticipantID) (string, bool, error)
}

// RawProfile is a profile row as written by the profile service. The display
// name may live under several columns depending on how the row was created.
type RawProfile struct {
	ID          chat.ParticipantID
	DisplayName string
	FullName    string
	Username    string
}

// Normalize resolves the aliases into the canonical shape. The first
// non-empty of display name, full name, username wins.
func (r RawProfile) Normalize() chat.Profile {
	name := ""
	for _, candidate := range []string{r.DisplayName, r.FullName, r.Username} {
		if c := strings.TrimSpace(candidate); c != "" {
			name = c
			break
		}
	}
	return chat.Profile{ID: r.ID, DisplayName: name}
}

type ProfileRepository struct {
	db *badger.DB
}

func NewProfileRepository(db *badger.DB) *ProfileRepository {
	return &ProfileRepository{db: db}
}

func profileKey(p chat.ParticipantID) []byte {
	return key("profile", string(p))
}

func (r *ProfileRepository) PutProfile(raw RawProfile) error {
	data, err := proto.Marshal(toPbProfile(raw))
	if err != nil {
		return fmt.Errorf("failed to marshal profile: %w", err)
	}
	return r.db.Update(func(txn *badger.Txn) error {
		return txn.Set(profileKey(raw.ID), data)
	})
}

func (r *ProfileRepository) GetProfile(p chat.ParticipantID) (chat.Profile, error) {
	var raw RawProfile
	err := r.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(profileKey(p))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			raw, err = unmarshalProfile(val)
			return err
		})
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return chat.Profile{}, fmt.Errorf("%w: profile %s", errors.ErrNotFound, p)
	}
	if err != nil {
		return chat.Profile{}, err
	}
	return raw.Normalize(), nil
}

// LookupDisplayName reports false when the profile is unknown or has no
// usable name.
func (r *ProfileRepository) LookupDisplayName(p chat.ParticipantID) (string, bool, error) {
	profile, err := r.GetProfile(p)
	if errors.Is(err, errors.ErrNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return profile.DisplayName, profile.DisplayName != "", nil
}

func unmarshalProfile(b []byte) (RawProfile, error) {
	var pbProfile pb.Profile
	if err := proto.Unmarshal(b, &pbProfile); err != nil {
		return RawProfile{}, err
	}
	return fromPbProfile(&pbProfile), nil
}

func toPbProfile(raw RawProfile) *pb.Profile {
	return &pb.Profile{
		Id:          string(raw.ID),
		DisplayName: raw.DisplayName,
		FullName:    raw.FullName,
		Username:    raw.Username,
	}
}

func fromPbProfile(p *pb.Profile) RawProfile {
	return RawProfile{
		ID:          chat.ParticipantID(p.Id),
		DisplayName: p.DisplayName,
		FullName:    p.FullName,
		Username:    p.Username,
	}
}
