package videostore

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/cockroachdb/pebble"

	pebblestore "github.com/yuge42/yt-api-mock/internal/storage/pebble"
)

// Video is a stored video resource. Optional live-broadcast fields are
// pointers so absent values stay absent in JSON.
type Video struct {
	ID                 string     `json:"id"`
	ChannelID          string     `json:"channelId"`
	Title              string     `json:"title"`
	Description        string     `json:"description"`
	ChannelTitle       string     `json:"channelTitle"`
	PublishedAt        time.Time  `json:"publishedAt"`
	LiveChatID         string     `json:"liveChatId,omitempty"`
	ActualStartTime    *time.Time `json:"actualStartTime,omitempty"`
	ActualEndTime      *time.Time `json:"actualEndTime,omitempty"`
	ScheduledStartTime *time.Time `json:"scheduledStartTime,omitempty"`
	ScheduledEndTime   *time.Time `json:"scheduledEndTime,omitempty"`
	ConcurrentViewers  *uint64    `json:"concurrentViewers,omitempty"`
}

// ErrNotFound is returned by Get for unknown video ids.
var ErrNotFound = errors.New("video not found")

var videoPrefix = []byte("video/")

func keyVideo(id string) []byte {
	k := make([]byte, 0, len(videoPrefix)+len(id))
	k = append(k, videoPrefix...)
	k = append(k, id...)
	return k
}

// Store provides video CRUD over a shared Pebble database.
type Store struct {
	db *pebblestore.DB
}

// New creates a Store backed by db.
func New(db *pebblestore.DB) *Store {
	return &Store{db: db}
}

// Put stores v, overwriting any existing video with the same id.
func (s *Store) Put(v Video) error {
	if v.ID == "" {
		return errors.New("videostore: empty video id")
	}
	val, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return s.db.Set(keyVideo(v.ID), val)
}

// Get returns the video with the given id, or ErrNotFound.
func (s *Store) Get(id string) (Video, error) {
	val, err := s.db.Get(keyVideo(id))
	if err != nil {
		if errors.Is(err, pebble.ErrNotFound) {
			return Video{}, ErrNotFound
		}
		return Video{}, err
	}
	var v Video
	if err := json.Unmarshal(val, &v); err != nil {
		return Video{}, err
	}
	return v, nil
}

// List returns all stored videos ordered by id.
func (s *Store) List() ([]Video, error) {
	hi := append(append([]byte(nil), videoPrefix...), 0xFF)
	iter, err := s.db.NewIter(&pebble.IterOptions{LowerBound: videoPrefix, UpperBound: hi})
	if err != nil {
		return nil, err
	}
	defer iter.Close()

	var out []Video
	for ok := iter.First(); ok; ok = iter.Next() {
		var v Video
		if err := json.Unmarshal(iter.Value(), &v); err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}
