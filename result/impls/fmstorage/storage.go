package fmstorage

import (
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/godruoyi/go-snowflake"
	"github.com/sgostarter/i/commerr"
	"github.com/sgostarter/i/stg"
	"github.com/sgostarter/libeasygo/stg/fs/rawfs"
	"github.com/sgostarter/libeasygo/stg/mwf"
	"github.com/sgostarter/libshares/result"
)

func NewFMStorage(root string, storage stg.FileStorage) result.Storage {
	return NewFMStorageEx(root, storage, false)
}

func NewFMStorageEx(root string, storage stg.FileStorage, prettySerial bool) result.Storage {
	if storage == nil {
		storage = rawfs.NewFSStorage("")
	}

	return &fmStorageImpl{
		resultStorage: mwf.NewMemWithFile[map[uint64]*result.Result, mwf.Serial, mwf.Lock](
			make(map[uint64]*result.Result), &mwf.JSONSerial{
				MarshalIndent: prettySerial,
			}, &sync.RWMutex{}, filepath.Join(root, "results.json"), storage),
		nameStorage: mwf.NewMemWithFile[map[string]uint64, mwf.Serial, mwf.Lock](
			make(map[string]uint64), &mwf.JSONSerial{}, &sync.RWMutex{}, filepath.Join(root, "result_names.json"), storage),
	}
}

type fmStorageImpl struct {
	resultStorage *mwf.MemWithFile[map[uint64]*result.Result, mwf.Serial, mwf.Lock]
	nameStorage   *mwf.MemWithFile[map[string]uint64, mwf.Serial, mwf.Lock]
}

func copyResult(r *result.Result) *result.Result {
	nr := *r
	nr.Shares = append([]string(nil), r.Shares...)

	return &nr
}

func (impl *fmStorageImpl) Add(r *result.Result) (id uint64, err error) {
	if r == nil || r.Name == "" {
		err = commerr.ErrInvalidArgument

		return
	}

	nr := copyResult(r)

	if nr.ID == 0 {
		nr.ID = snowflake.ID()
	}

	if nr.CreateAt == 0 {
		nr.CreateAt = time.Now().Unix()
	}

	err = impl.resultStorage.Change(func(oldM map[uint64]*result.Result) (newM map[uint64]*result.Result, err error) {
		newM = oldM
		if len(newM) == 0 {
			newM = make(map[uint64]*result.Result)
		}

		if _, ok := newM[nr.ID]; ok {
			err = commerr.ErrAlreadyExists

			return
		}

		newM[nr.ID] = nr

		return
	})
	if err != nil {
		return
	}

	err = impl.nameStorage.Change(func(oldM map[string]uint64) (newM map[string]uint64, err error) {
		newM = oldM
		if len(newM) == 0 {
			newM = make(map[string]uint64)
		}

		newM[nr.Name] = nr.ID

		return
	})
	if err != nil {
		return
	}

	id = nr.ID

	return
}

func (impl *fmStorageImpl) Get(id uint64) (r *result.Result, err error) {
	impl.resultStorage.Read(func(m map[uint64]*result.Result) {
		if v, ok := m[id]; ok {
			r = copyResult(v)
		} else {
			err = commerr.ErrNotFound
		}
	})

	return
}

func (impl *fmStorageImpl) FindByName(name string) (r *result.Result, err error) {
	var (
		id     uint64
		exists bool
	)

	impl.nameStorage.Read(func(m map[string]uint64) {
		id, exists = m[name]
	})

	if !exists {
		err = commerr.ErrNotFound

		return
	}

	return impl.Get(id)
}

func (impl *fmStorageImpl) List() (rs []*result.Result, err error) {
	impl.resultStorage.Read(func(m map[uint64]*result.Result) {
		rs = make([]*result.Result, 0, len(m))

		for _, r := range m {
			rs = append(rs, copyResult(r))
		}
	})

	sort.Slice(rs, func(i, j int) bool {
		return rs[i].ID < rs[j].ID
	})

	return
}

func (impl *fmStorageImpl) Del(id uint64) error {
	var name string

	err := impl.resultStorage.Change(func(oldM map[uint64]*result.Result) (newM map[uint64]*result.Result, err error) {
		newM = oldM

		r, ok := newM[id]
		if !ok {
			err = commerr.ErrNotFound

			return
		}

		name = r.Name

		delete(newM, id)

		return
	})
	if err != nil {
		return err
	}

	return impl.nameStorage.Change(func(oldM map[string]uint64) (newM map[string]uint64, err error) {
		newM = oldM

		if newM[name] == id {
			delete(newM, name)
		}

		return
	})
}
