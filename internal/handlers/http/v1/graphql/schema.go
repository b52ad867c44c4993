package graphql

import (
	"time"

	"github.com/graphql-go/graphql"
)

var DateTime = graphql.NewScalar(
	graphql.ScalarConfig{
		Name:        "DateTime",
		Description: "DateTime scalar type",
		Serialize: func(value interface{}) interface{} {
			switch v := value.(type) {
			case time.Time:
				return v.Format(time.RFC3339Nano)
			case *time.Time:
				if v == nil {
					return nil
				}
				return v.Format(time.RFC3339Nano)
			default:
				return nil
			}
		},
	},
)

func (gh *gqlHandler) initSchema() error {
	pasteType := graphql.NewObject(
		graphql.ObjectConfig{
			Name: "Paste",
			Fields: graphql.Fields{
				"id":      &graphql.Field{Type: graphql.ID},
				"title":   &graphql.Field{Type: graphql.String},
				"content": &graphql.Field{Type: graphql.String},
				"time":    &graphql.Field{Type: DateTime},
			},
		},
	)

	commentType := graphql.NewObject(
		graphql.ObjectConfig{
			Name: "Comment",
			Fields: graphql.Fields{
				"id":      &graphql.Field{Type: graphql.ID},
				"pasteId": &graphql.Field{Type: graphql.ID},
				"comment": &graphql.Field{Type: graphql.String},
			},
		},
	)

	queryType := graphql.NewObject(
		graphql.ObjectConfig{
			Name: "Query",
			Fields: graphql.Fields{
				"pastes":   getPastesQuery(gh, pasteType),
				"comments": getCommentsQuery(gh, commentType),
			},
		},
	)

	mutationType := graphql.NewObject(
		graphql.ObjectConfig{
			Name: "Mutation",
			Fields: graphql.Fields{
				"createPaste":   createPasteMutation(gh, pasteType),
				"deletePaste":   deletePasteMutation(gh, pasteType),
				"createComment": createCommentMutation(gh, commentType),
				"deleteComment": deleteCommentMutation(gh, commentType),
			},
		},
	)

	schemaConfig := graphql.SchemaConfig{
		Query:    queryType,
		Mutation: mutationType,
	}

	schema, err := graphql.NewSchema(schemaConfig)
	if err != nil {
		return err
	}
	gh.schema = schema

	return nil
}
