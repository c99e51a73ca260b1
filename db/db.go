// Package db stores program cuts in redis, one JSON value per
// revision plus a per-program list tracking revision order.
package db

import (
	"encoding/json"
	"errors"
	"net"
	"time"

	"github.com/go-redis/redis"
	"github.com/gofrs/uuid"
)

// ErrCutNotFound is the error returned when the requested program
// revision is not stored.
var ErrCutNotFound = errors.New("cut not found")

// Repository stores and recalls program cuts. Revisions reports a
// program's revisions oldest first.
type Repository interface {
	SaveCut(cut *Cut) error
	LoadCut(program, revision string) (Cut, error)
	Revisions(program string) ([]string, error)
	DeleteCut(program, revision string) error
}

type Options struct {
	Addr string
	DB   int
}

func NewClient(opt *Options) (*Client, error) {
	if opt == nil {
		opt = &Options{}
	}
	if opt.Addr == "" {
		opt.Addr = "localhost:6379"
	}
	_, _, err := net.SplitHostPort(opt.Addr)
	if err != nil {
		opt.Addr = net.JoinHostPort(opt.Addr, "6379")
	}
	c := &Client{
		rc: redis.NewClient(&redis.Options{
			Addr:     opt.Addr,
			DB:       opt.DB,
			Password: "",
		}),
	}
	return c, nil
}

// commands is the slice of the redis api the store issues.
type commands interface {
	Get(key string) *redis.StringCmd
	Set(key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	SetNX(key string, value interface{}, expiration time.Duration) *redis.BoolCmd
	Del(keys ...string) *redis.IntCmd
	RPush(key string, values ...interface{}) *redis.IntCmd
	LRange(key string, start, stop int64) *redis.StringSliceCmd
	LRem(key string, count int64, value interface{}) *redis.IntCmd
}

type Client struct {
	rc commands
}

// SaveCut stores the cut under its program and revision, assigning an
// ID and creation time if the caller left them empty. Storing a
// revision again overwrites the events without duplicating the
// revision in the program's order. SetNX decides which writer stored
// a revision first, so concurrent saves index it exactly once.
func (c *Client) SaveCut(cut *Cut) error {
	if cut.Program == "" || cut.Revision == "" {
		return errors.New("cut program or revision missing")
	}
	if cut.ID == "" {
		cut.ID = uuid.Must(uuid.NewV4()).String()
	}
	if cut.CreatedAt.IsZero() {
		cut.CreatedAt = time.Now().UTC()
	}

	key := cutKey(cut.Program, cut.Revision)
	data, _ := json.Marshal(cut)

	fresh, err := c.rc.SetNX(key, string(data), exp).Result()
	if err != nil {
		return err
	}
	if !fresh {
		return c.rc.Set(key, string(data), exp).Err()
	}
	return c.rc.RPush(revisionsKey(cut.Program), cut.Revision).Err()
}

func (c *Client) LoadCut(program, revision string) (Cut, error) {
	val, err := c.rc.Get(cutKey(program, revision)).Result()
	if err == redis.Nil {
		return Cut{}, ErrCutNotFound
	} else if err != nil {
		return Cut{}, err
	}
	var cut Cut
	if err := json.Unmarshal([]byte(val), &cut); err != nil {
		return Cut{}, err
	}
	return cut, nil
}

func (c *Client) Revisions(program string) ([]string, error) {
	return c.rc.LRange(revisionsKey(program), 0, -1).Result()
}

func (c *Client) DeleteCut(program, revision string) error {
	n, err := c.rc.Del(cutKey(program, revision)).Result()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrCutNotFound
	}
	return c.rc.LRem(revisionsKey(program), 0, revision).Err()
}

func cutKey(program, revision string) string {
	return "cut:" + program + ":" + revision
}

func revisionsKey(program string) string {
	return "cuts:" + program
}

var exp = 24 * time.Hour * 365 * 10
