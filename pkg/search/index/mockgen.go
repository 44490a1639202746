//go:build gomock || generate

package index

//go:generate sh -c "go run go.uber.org/mock/mockgen -build_flags=\"-tags=gomock\" -package index -destination mock_file_parser_test.go wordfreq/internal FileParser"
