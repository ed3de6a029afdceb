package authsvc

import (
	"context"
	"errors"
	"time"

	"sentiment_dashboard/core/common"
	"sentiment_dashboard/internal/utility"

	"github.com/redis/go-redis/v9"
)

// Denylist lưu jti của các token đã signout cho tới khi token hết hạn.
type Denylist interface {
	Revoke(ctx context.Context, jti string, ttl time.Duration) error
	IsRevoked(ctx context.Context, jti string) (bool, error)
}

const revokedKeyPrefix = "auth:revoked:"

// RedisDenylist dùng Redis, chia sẻ giữa các instance.
type RedisDenylist struct {
	client redis.UniversalClient
}

// NewRedisDenylist tạo RedisDenylist từ client có sẵn.
func NewRedisDenylist(client redis.UniversalClient) *RedisDenylist {
	return &RedisDenylist{client: client}
}

func (d *RedisDenylist) Revoke(ctx context.Context, jti string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	if err := d.client.Set(ctx, revokedKeyPrefix+jti, 1, ttl).Err(); err != nil {
		return common.NewError(common.ErrCodeDatabaseConnection, "Token store unavailable", common.StatusServiceUnavailable, err.Error())
	}
	return nil
}

func (d *RedisDenylist) IsRevoked(ctx context.Context, jti string) (bool, error) {
	err := d.client.Get(ctx, revokedKeyPrefix+jti).Err()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, common.NewError(common.ErrCodeDatabaseConnection, "Token store unavailable", common.StatusServiceUnavailable, err.Error())
	}
	return true, nil
}

// CacheDenylist giữ danh sách trong process; dùng khi không cấu hình REDIS_ADDR.
type CacheDenylist struct {
	cache *utility.Cache
}

// NewCacheDenylist tạo CacheDenylist với chu kỳ dọn dẹp 10 phút.
func NewCacheDenylist() *CacheDenylist {
	return &CacheDenylist{cache: utility.NewCache(24*time.Hour, 10*time.Minute)}
}

func (d *CacheDenylist) Revoke(_ context.Context, jti string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	d.cache.SetWithTTL(jti, struct{}{}, ttl)
	return nil
}

func (d *CacheDenylist) IsRevoked(_ context.Context, jti string) (bool, error) {
	_, ok := d.cache.Get(jti)
	return ok, nil
}

// Close dừng goroutine dọn dẹp.
func (d *CacheDenylist) Close() {
	d.cache.Stop()
}
