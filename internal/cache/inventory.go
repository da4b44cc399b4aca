package cache

import (
	"context"
	"fmt"
	"time"
)

const (
	ArticleKeyPrefix   = "article:%d"
	BlacklistKeyPrefix = "blacklist:%s"
)

const (
	ArticleTTL = 10 * time.Minute
)

func ArticleKey(articleID uint) string {
	return fmt.Sprintf(ArticleKeyPrefix, articleID)
}

// BlacklistKey is the key under which a revoked token id is stored until the token expires.
func BlacklistKey(jti string) string {
	return fmt.Sprintf(BlacklistKeyPrefix, jti)
}

func Invalidate(ctx context.Context, key string) {
	if client != nil {
		client.Del(ctx, key)
	}
}

func InvalidateArticle(ctx context.Context, articleID uint) {
	Invalidate(ctx, ArticleKey(articleID))
}
