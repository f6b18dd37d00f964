// Package common — errors.go определяет пользовательские ошибки,
// которые используются во всех модулях бота.
// Эти ошибки позволяют обработчикам различать типы проблем
// и отправлять пользователю понятные сообщения.
package common

import "errors"

// Ошибки трекера
var (
	// ErrInvalidMinutes — длительность тренировки вне 0..1440 минут
	ErrInvalidMinutes = errors.New("длительность тренировки должна быть от 0 до 1440 минут")
	// ErrInvalidMood — настроение вне шкалы 1..5
	ErrInvalidMood = errors.New("настроение должно быть от 1 до 5")
	// ErrInvalidSleep — качество сна вне шкалы 0..10
	ErrInvalidSleep = errors.New("качество сна должно быть от 0 до 10")
	// ErrInvalidWater — количество стаканов вне 0..100
	ErrInvalidWater = errors.New("количество стаканов должно быть от 0 до 100")
	// ErrInvalidDate — дата не распознана или в будущем
	ErrInvalidDate = errors.New("некорректная дата")
)

// Ошибки ИИ-ассистента
var (
	// ErrEmptyQuestion — пустой вопрос
	ErrEmptyQuestion = errors.New("вопрос пустой")
	// ErrEmptyNarration — нечего озвучивать
	ErrEmptyNarration = errors.New("текст для озвучки пустой")
	// ErrEmptyResponse — модель вернула пустой ответ
	ErrEmptyResponse = errors.New("модель вернула пустой ответ")
	// ErrAIDisabled — ключ модели не задан
	ErrAIDisabled = errors.New("ИИ-ассистент не настроен")
	// ErrImageTooLarge — фото больше допустимого размера
	ErrImageTooLarge = errors.New("фото слишком большое")
)
