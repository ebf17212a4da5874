package cache

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/VitaminP8/yatube/internal/pagination"
)

// IndexKey - ключ, под которым кэшируется пагинатор главной страницы.
const IndexKey = "posts_paginator"

// IndexTTL - время жизни кэша главной страницы. Посты, созданные или
// удаленные внутри этого окна, на главной не видны до истечения TTL.
const IndexTTL = 20 * time.Second

// PaginatorCache инжектируется в обработчики страниц - глобального
// кэша в пакете нет, чтобы обработчики оставались тестируемыми.
type PaginatorCache interface {
	Get(key string) (*pagination.Paginator, bool)
	Add(key string, p *pagination.Paginator)
	Purge()
}

type LRUPaginatorCache struct {
	lru *expirable.LRU[string, *pagination.Paginator]
}

// New создает кэш пагинаторов с указанным TTL. Записей немного
// (фактически одна), поэтому размер фиксирован небольшим.
func New(ttl time.Duration) *LRUPaginatorCache {
	return &LRUPaginatorCache{
		lru: expirable.NewLRU[string, *pagination.Paginator](8, nil, ttl),
	}
}

func (c *LRUPaginatorCache) Get(key string) (*pagination.Paginator, bool) {
	return c.lru.Get(key)
}

func (c *LRUPaginatorCache) Add(key string, p *pagination.Paginator) {
	c.lru.Add(key, p)
}

func (c *LRUPaginatorCache) Purge() {
	c.lru.Purge()
}
