package redisimpls

import (
	"context"
	"encoding/json"
	"errors"
	"sort"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/godruoyi/go-snowflake"
	"github.com/sgostarter/i/commerr"
	"github.com/sgostarter/i/l"
	"github.com/sgostarter/libshares/result"
	"github.com/spf13/cast"
)

func NewRedisStorage(preKey string, redisCli *redis.Client, logger l.Wrapper) result.Storage {
	if logger == nil {
		logger = l.NewNopLoggerWrapper()
	}

	logger = logger.WithFields(l.StringField(l.ClsKey, "resultsStorage"))

	if redisCli == nil {
		logger.Fatal("no redis client")
	}

	return &resultsStorage{
		logger:   logger,
		preKey:   preKey,
		redisCli: redisCli,
	}
}

type resultsStorage struct {
	logger   l.Wrapper
	preKey   string
	redisCli *redis.Client
}

func (impl *resultsStorage) resultsKey() string {
	if impl.preKey == "" {
		return "results"
	}

	return impl.preKey + ":results"
}

func (impl *resultsStorage) namesKey() string {
	if impl.preKey == "" {
		return "result_names"
	}

	return impl.preKey + ":result_names"
}

func (impl *resultsStorage) Add(r *result.Result) (id uint64, err error) {
	if r == nil || r.Name == "" {
		err = commerr.ErrInvalidArgument

		return
	}

	nr := *r

	if nr.ID == 0 {
		nr.ID = snowflake.ID()
	}

	if nr.CreateAt == 0 {
		nr.CreateAt = time.Now().Unix()
	}

	d, err := json.Marshal(&nr)
	if err != nil {
		return
	}

	ok, err := impl.redisCli.HSetNX(context.Background(), impl.resultsKey(), strconv.FormatUint(nr.ID, 10), d).Result()
	if err != nil {
		return
	}

	if !ok {
		err = commerr.ErrAlreadyExists

		return
	}

	err = impl.redisCli.HSet(context.Background(), impl.namesKey(), nr.Name, nr.ID).Err()
	if err != nil {
		return
	}

	id = nr.ID

	return
}

func (impl *resultsStorage) Get(id uint64) (r *result.Result, err error) {
	d, err := impl.redisCli.HGet(context.Background(), impl.resultsKey(), strconv.FormatUint(id, 10)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			err = commerr.ErrNotFound
		}

		return
	}

	r = new(result.Result)

	err = json.Unmarshal(d, r)

	return
}

func (impl *resultsStorage) FindByName(name string) (r *result.Result, err error) {
	s, err := impl.redisCli.HGet(context.Background(), impl.namesKey(), name).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			err = commerr.ErrNotFound
		}

		return
	}

	id, err := cast.ToUint64E(s)
	if err != nil {
		impl.logger.WithFields(l.ErrorField(err), l.StringField("name", name)).Error("invalid id on name table")

		return
	}

	return impl.Get(id)
}

func (impl *resultsStorage) List() (rs []*result.Result, err error) {
	m, err := impl.redisCli.HGetAll(context.Background(), impl.resultsKey()).Result()
	if err != nil {
		return
	}

	rs = make([]*result.Result, 0, len(m))

	for idS, d := range m {
		var r result.Result

		if e := json.Unmarshal([]byte(d), &r); e != nil {
			impl.logger.WithFields(l.ErrorField(e), l.StringField("id", idS)).Error("invalid result data")

			continue
		}

		rs = append(rs, &r)
	}

	sort.Slice(rs, func(i, j int) bool {
		return rs[i].ID < rs[j].ID
	})

	return
}

func (impl *resultsStorage) Del(id uint64) error {
	r, err := impl.Get(id)
	if err != nil {
		return err
	}

	err = impl.redisCli.HDel(context.Background(), impl.resultsKey(), strconv.FormatUint(id, 10)).Err()
	if err != nil {
		return err
	}

	nameID, err := impl.redisCli.HGet(context.Background(), impl.namesKey(), r.Name).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil
		}

		return err
	}

	if cast.ToUint64(nameID) == id {
		return impl.redisCli.HDel(context.Background(), impl.namesKey(), r.Name).Err()
	}

	return nil
}
