package shop

import (
	"context"
	"fmt"

	"github.com/admin/tg-bots/shop-bot/internal/domain"
)

// EnsureDefaults наполняет пустые таблицы стартовым набором:
// шесть способов оплаты и несколько демо-товаров
// Повторные запуски ничего не трогают
func (s *Service) EnsureDefaults(ctx context.Context) error {
	methodsCount, err := s.PaymentMethodRepo.Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to count payment methods: %w", err)
	}

	if methodsCount == 0 {
		methods := domain.DefaultPaymentMethods()
		for i := range methods {
			if _, err := s.PaymentMethodRepo.Create(ctx, &methods[i]); err != nil {
				return fmt.Errorf("failed to seed payment method %q: %w", methods[i].Name, err)
			}
		}
		s.Log.Info("seeded default payment methods", "count", len(methods))
	}

	productsCount, err := s.ProductRepo.Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to count products: %w", err)
	}

	if productsCount == 0 {
		products := domain.DefaultProducts()
		for i := range products {
			if _, err := s.ProductRepo.Create(ctx, &products[i]); err != nil {
				return fmt.Errorf("failed to seed product %q: %w", products[i].Name, err)
			}
		}
		s.Log.Info("seeded default products", "count", len(products))
	}

	return nil
}
