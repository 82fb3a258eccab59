package mocks

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name SportsDataProvider --dir ../usecase --output usecase --outpkg usecasemock --filename sports_data_provider_mock.go
//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name NarrativeProvider --dir ../usecase --output usecase --outpkg usecasemock --filename narrative_provider_mock.go
