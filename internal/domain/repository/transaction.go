package repository

import "context"

// TransactionManager defines the interface for managing database transactions.
// This allows the use case layer to handle transactions without depending on a
// specific DB driver like GORM.
type TransactionManager interface {
	// Execute runs a function within a database transaction.
	// If the function returns an error, the transaction is rolled back.
	// Otherwise, it's committed. All repository operations within the
	// function use the same database transaction.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory provides repository instances bound to a specific
// transaction, so every operation inside the callback shares one connection.
type RepositoryFactory interface {
	// UserRepo returns a UserRepository bound to the current transaction.
	UserRepo() UserRepository

	// CredentialRepo returns a CredentialRepository bound to the current transaction.
	CredentialRepo() CredentialRepository

	// RegionRepo returns a RegionRepository bound to the current transaction.
	RegionRepo() RegionRepository

	// HotelRepo returns a HotelRepository bound to the current transaction.
	HotelRepo() HotelRepository

	// RestaurantRepo returns a RestaurantRepository bound to the current transaction.
	RestaurantRepo() RestaurantRepository

	// LegendRepo returns a LegendRepository bound to the current transaction.
	LegendRepo() LegendRepository

	// MythStoryRepo returns a MythStoryRepository bound to the current transaction.
	MythStoryRepo() MythStoryRepository

	// ReviewRepo returns a ReviewRepository bound to the current transaction.
	ReviewRepo() ReviewRepository

	// EventPlaceRepo returns an EventPlaceRepository bound to the current transaction.
	EventPlaceRepo() EventPlaceRepository
}
