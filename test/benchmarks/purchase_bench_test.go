// test/benchmarks/purchase_bench_test.go
package benchmarks

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"

	redis_a "github.com/akarpov/grocery-be/internal/adapters/redis_adapter"
	"github.com/akarpov/grocery-be/internal/core/domain"
	"github.com/akarpov/grocery-be/test/helpers"
)

func BenchmarkPurchaseBuy(b *testing.B) {
	price := decimal.NewFromFloat(2.50)

	b.Run("FirstBuy", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			p := domain.Purchase{VisitID: 1, ItemID: 1}
			_ = p.Buy(2, &price)
		}
	})

	b.Run("BlendedBuy", func(b *testing.B) {
		other := decimal.NewFromFloat(3.10)
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			p := domain.Purchase{VisitID: 1, ItemID: 1}
			_ = p.Buy(2, &price)
			_ = p.Buy(3, &other)
		}
	})
}

func BenchmarkSummarizePurchases(b *testing.B) {
	for _, size := range []int{10, 100, 1000} {
		b.Run(fmt.Sprintf("rows_%d", size), func(b *testing.B) {
			purchases := make([]domain.Purchase, size)
			for i := range purchases {
				price := decimal.NewFromInt(int64(i%20 + 1))
				purchases[i] = domain.Purchase{
					VisitID:  1,
					ItemID:   int64(i + 1),
					Quantity: int64(i%5 + 1),
					Price:    &price,
				}
			}
			at := time.Now()

			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_ = domain.SummarizePurchases(1, purchases, at)
			}
		})
	}
}

func BenchmarkCache(b *testing.B) {
	server := miniredis.NewMiniRedis()
	if err := server.Start(); err != nil {
		b.Fatalf("failed to start miniredis: %v", err)
	}
	defer server.Close()

	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	defer client.Close()

	cache := redis_a.NewCache(client, time.Hour, helpers.TestLogger())
	ctx := context.Background()

	summary := domain.VisitSummary{
		VisitID:   42,
		Purchases: 12,
		Units:     30,
		Total:     decimal.NewFromFloat(87.50),
	}

	b.Run("Set", func(b *testing.B) {
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			_ = cache.Set(ctx, fmt.Sprintf("visit:summary:%d", i), summary)
		}
	})

	b.Run("Get", func(b *testing.B) {
		_ = cache.Set(ctx, "visit:summary:42", summary)

		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			var out domain.VisitSummary
			_ = cache.Get(ctx, "visit:summary:42", &out)
		}
	})

	b.Run("GetOrSet", func(b *testing.B) {
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			var out domain.VisitSummary
			_ = cache.GetOrSet(ctx, "visit:summary:42", &out, func() (interface{}, error) {
				return summary, nil
			}, time.Hour)
		}
	})
}
