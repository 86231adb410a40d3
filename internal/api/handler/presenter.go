package handler

import (
    "time"

    "github.com/greenpandorik/yatube-project-api/internal/model"
)

// 出站表示：author/user/following 一律渲染为用户名（对外稳定的人类可读键），
// 不暴露内部 id；comments/post 这类派生字段只读，入站结构体里根本不存在

type groupResponse struct {
    ID          string `json:"id"`
    Title       string `json:"title"`
    Slug        string `json:"slug"`
    Description string `json:"description"`
}

type postResponse struct {
    ID       string    `json:"id"`
    Text     string    `json:"text"`
    Author   string    `json:"author"`
    Image    *string   `json:"image"`
    Group    *string   `json:"group"`
    PubDate  time.Time `json:"pub_date"`
    Comments []string  `json:"comments"`
}

type commentResponse struct {
    ID      string    `json:"id"`
    Text    string    `json:"text"`
    Author  string    `json:"author"`
    Created time.Time `json:"created"`
    Post    string    `json:"post"`
}

type followResponse struct {
    ID        string `json:"id"`
    User      string `json:"user"`
    Following string `json:"following"`
}

func toGroupResponse(g *model.Group) groupResponse {
    return groupResponse{ID: g.ID, Title: g.Title, Slug: g.Slug, Description: g.Description}
}

func toPostResponse(p *model.Post) postResponse {
    commentIDs := make([]string, len(p.Comments))
    for i, c := range p.Comments {
        commentIDs[i] = c.ID
    }
    return postResponse{
        ID:       p.ID,
        Text:     p.Text,
        Author:   p.Author.Username,
        Image:    p.Image,
        Group:    p.GroupID,
        PubDate:  p.PubDate,
        Comments: commentIDs,
    }
}

func toCommentResponse(c *model.Comment) commentResponse {
    return commentResponse{
        ID:      c.ID,
        Text:    c.Text,
        Author:  c.Author.Username,
        Created: c.Created,
        Post:    c.PostID,
    }
}

func toFollowResponse(f *model.Follow) followResponse {
    return followResponse{ID: f.ID, User: f.User.Username, Following: f.Following.Username}
}

func toPostList(items []*model.Post) []postResponse {
    res := make([]postResponse, len(items))
    for i, p := range items {
        res[i] = toPostResponse(p)
    }
    return res
}

func toCommentList(items []*model.Comment) []commentResponse {
    res := make([]commentResponse, len(items))
    for i, c := range items {
        res[i] = toCommentResponse(c)
    }
    return res
}

func toGroupList(items []*model.Group) []groupResponse {
    res := make([]groupResponse, len(items))
    for i, g := range items {
        res[i] = toGroupResponse(g)
    }
    return res
}

func toFollowList(items []*model.Follow) []followResponse {
    res := make([]followResponse, len(items))
    for i, f := range items {
        res[i] = toFollowResponse(f)
    }
    return res
}
