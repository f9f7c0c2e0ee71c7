package mocks

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name Repository --dir ../domain/prospect --output domain/prospect --outpkg prospectmock --filename repository_mock.go
//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name Repository --dir ../domain/stats --output domain/stats --outpkg statsmock --filename repository_mock.go
//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name Repository --dir ../domain/scouting --output domain/scouting --outpkg scoutingmock --filename repository_mock.go
//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name NoteRepository --dir ../domain/scouting --output domain/scouting --outpkg scoutingmock --filename note_repository_mock.go
//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name OrderRepository --dir ../domain/draft --output domain/draft --outpkg draftmock --filename order_repository_mock.go
//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name MockDraftRepository --dir ../domain/draft --output domain/draft --outpkg draftmock --filename mock_draft_repository_mock.go
