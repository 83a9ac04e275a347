package design

import (
	"sync"
)

// keyedLock 按会话 ID 串行化读-改-写。
// 每个键对应一把独立互斥锁，不同会话互不阻塞；
// 锁条目一旦创建不回收，会话规模在单进程内可接受。
type keyedLock struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func newKeyedLock() *keyedLock {
	return &keyedLock{locks: make(map[string]*sync.Mutex)}
}

// Lock 锁定指定键，返回解锁函数
func (k *keyedLock) Lock(key string) func() {
	k.mu.Lock()
	l, ok := k.locks[key]
	if !ok {
		l = &sync.Mutex{}
		k.locks[key] = l
	}
	k.mu.Unlock()

	l.Lock()
	return l.Unlock
}
