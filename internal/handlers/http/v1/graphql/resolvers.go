package graphql

import (
	"github.com/graphql-go/graphql"
)

func getPastesQuery(gh *gqlHandler, pasteType *graphql.Object) *graphql.Field {
	return &graphql.Field{
		Type: graphql.NewList(pasteType),
		Resolve: func(p graphql.ResolveParams) (interface{}, error) {
			pastes, err := gh.svc.GetPastes(p.Context)
			if err != nil {
				return nil, gh.resolveFailed("get pastes", "An error occurred when fetching pastes. Check server logs.", err)
			}
			return pastes, nil
		},
	}
}

func getCommentsQuery(gh *gqlHandler, commentType *graphql.Object) *graphql.Field {
	return &graphql.Field{
		Type: graphql.NewList(commentType),
		Args: graphql.FieldConfigArgument{
			"pasteId": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
		},
		Resolve: func(p graphql.ResolveParams) (interface{}, error) {
			comments, err := gh.svc.GetComments(p.Context, p.Args["pasteId"].(string))
			if err != nil {
				return nil, gh.resolveFailed("get comments", "An error occurred when fetching comments for that post. Check server logs.", err)
			}
			return comments, nil
		},
	}
}

func createPasteMutation(gh *gqlHandler, pasteType *graphql.Object) *graphql.Field {
	return &graphql.Field{
		Type: pasteType,
		Args: graphql.FieldConfigArgument{
			"input": &graphql.ArgumentConfig{
				Type: graphql.NewInputObject(
					graphql.InputObjectConfig{
						Name: "CreatePasteInput",
						Fields: graphql.InputObjectConfigFieldMap{
							"title":   &graphql.InputObjectFieldConfig{Type: graphql.String},
							"content": &graphql.InputObjectFieldConfig{Type: graphql.String},
						},
					},
				),
			},
		},
		Resolve: func(p graphql.ResolveParams) (interface{}, error) {
			input, _ := p.Args["input"].(map[string]interface{})
			paste, err := gh.svc.CreatePaste(p.Context, optString(input, "title"), optString(input, "content"))
			if err != nil {
				return nil, gh.resolveFailed("create paste", "An error occurred when posting a paste. Check server logs.", err)
			}
			return paste, nil
		},
	}
}

func deletePasteMutation(gh *gqlHandler, pasteType *graphql.Object) *graphql.Field {
	return &graphql.Field{
		Type: pasteType,
		Args: graphql.FieldConfigArgument{
			"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
		},
		Resolve: func(p graphql.ResolveParams) (interface{}, error) {
			paste, err := gh.svc.DeletePaste(p.Context, p.Args["id"].(string))
			if err != nil {
				return nil, gh.resolveFailed("delete paste", "An error occurred when deleting a paste. Check server logs.", err)
			}
			if paste == nil {
				return nil, nil
			}
			return paste, nil
		},
	}
}

func createCommentMutation(gh *gqlHandler, commentType *graphql.Object) *graphql.Field {
	return &graphql.Field{
		Type: commentType,
		Args: graphql.FieldConfigArgument{
			"input": &graphql.ArgumentConfig{
				Type: graphql.NewInputObject(
					graphql.InputObjectConfig{
						Name: "CreateCommentInput",
						Fields: graphql.InputObjectConfigFieldMap{
							"pasteId": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.ID)},
							"comment": &graphql.InputObjectFieldConfig{Type: graphql.String},
						},
					},
				),
			},
		},
		Resolve: func(p graphql.ResolveParams) (interface{}, error) {
			input, _ := p.Args["input"].(map[string]interface{})
			pasteID, _ := input["pasteId"].(string)
			comment, err := gh.svc.CreateComment(p.Context, pasteID, optString(input, "comment"))
			if err != nil {
				return nil, gh.resolveFailed("create comment", "An error occurred when posting a comment. Check server logs.", err)
			}
			return comment, nil
		},
	}
}

func deleteCommentMutation(gh *gqlHandler, commentType *graphql.Object) *graphql.Field {
	return &graphql.Field{
		Type: commentType,
		Args: graphql.FieldConfigArgument{
			"pasteId": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
			"id":      &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
		},
		Resolve: func(p graphql.ResolveParams) (interface{}, error) {
			comment, err := gh.svc.DeleteComment(p.Context, p.Args["pasteId"].(string), p.Args["id"].(string))
			if err != nil {
				return nil, gh.resolveFailed("delete comment", "An error occurred when deleting a comment. Check server logs.", err)
			}
			if comment == nil {
				return nil, nil
			}
			return comment, nil
		},
	}
}

// optString returns nil for absent or null input fields.
func optString(input map[string]interface{}, key string) *string {
	s, ok := input[key].(string)
	if !ok {
		return nil
	}
	return &s
}
