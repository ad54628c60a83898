package domain

import "errors"

// Сентинельные ошибки уровня домена
// Репозитории переводят sql.ErrNoRows в них, usecase-слой подбирает текст для пользователя
var (
	ErrProductNotFound       = errors.New("product not found")
	ErrPaymentMethodNotFound = errors.New("payment method not found")
	ErrPaymentMethodRetired  = errors.New("payment method is retired")
	ErrAccessDenied          = errors.New("access denied")
)

// BusinessError ошибка бизнес-логики, которая уже залогирована в UseCase
type BusinessError struct {
	Err error
}

func (e *BusinessError) Error() string {
	return e.Err.Error()
}

func (e *BusinessError) Unwrap() error {
	return e.Err
}

func WrapBusinessError(err error) error {
	if err == nil {
		return nil
	}
	return &BusinessError{Err: err}
}

func IsBusinessError(err error) bool {
	var businessErr *BusinessError
	return errors.As(err, &businessErr)
}
