package service

import "errors"

var (
	ErrInvalidAmount       = errors.New("montant initial invalide")
	ErrInvalidContribution = errors.New("versement mensuel invalide")
	ErrInvalidHorizon      = errors.New("horizon de placement invalide")
	ErrInvalidReturn       = errors.New("rendement annuel invalide")
	ErrUnknownTier         = errors.New("formule de gestion inconnue")
	ErrInvalidFrames       = errors.New("paramètres d'animation invalides")
)
