package api_test

import (
    "bytes"
    "encoding/json"
    "fmt"
    "net/http"
    "net/http/httptest"
    "testing"

    "github.com/gin-gonic/gin"
    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"
    "gorm.io/driver/sqlite"
    "gorm.io/gorm"
    gormlogger "gorm.io/gorm/logger"

    "github.com/greenpandorik/yatube-project-api/config"
    "github.com/greenpandorik/yatube-project-api/internal/api"
    "github.com/greenpandorik/yatube-project-api/internal/api/handler"
    "github.com/greenpandorik/yatube-project-api/internal/repository"
    "github.com/greenpandorik/yatube-project-api/internal/service"
    "github.com/greenpandorik/yatube-project-api/pkg/database"
)

type envelope struct {
    Code    int             `json:"code"`
    Message string          `json:"message"`
    Data    json.RawMessage `json:"data"`
}

func newTestRouter(t *testing.T) *gin.Engine {
    t.Helper()
    db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
        TranslateError: true,
        Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
    })
    require.NoError(t, err)
    require.NoError(t, db.Exec("PRAGMA foreign_keys = ON").Error)
    require.NoError(t, database.Migrate(db))

    cfg := &config.Config{}
    cfg.Server.Mode = gin.TestMode
    cfg.JWT = config.JWTConfig{Secret: "test-secret", ExpireHour: 1}

    userRepo := repository.NewUserRepository(db)
    h := handler.New(
        repository.NewGroupRepository(db),
        repository.NewPostRepository(db),
        repository.NewCommentRepository(db),
        service.NewAuthService(userRepo, cfg.JWT),
        service.NewFollowService(repository.NewFollowRepository(db), userRepo, nil),
    )
    return api.NewRouter(cfg, h)
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body any) (int, envelope) {
    t.Helper()
    var buf bytes.Buffer
    if body != nil {
        require.NoError(t, json.NewEncoder(&buf).Encode(body))
    }
    req := httptest.NewRequest(method, path, &buf)
    req.Header.Set("Content-Type", "application/json")
    if token != "" {
        req.Header.Set("Authorization", "Bearer "+token)
    }
    w := httptest.NewRecorder()
    r.ServeHTTP(w, req)

    var env envelope
    if len(w.Body.Bytes()) > 0 {
        require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), "body: %s", w.Body.String())
    }
    return w.Code, env
}

func signup(t *testing.T, r *gin.Engine, username string) string {
    t.Helper()
    code, _ := doJSON(t, r, http.MethodPost, "/api/v1/auth/register", "", gin.H{
        "username": username,
        "email":    fmt.Sprintf("%s@example.com", username),
        "password": "password123",
    })
    require.Equal(t, http.StatusCreated, code)
    code, env := doJSON(t, r, http.MethodPost, "/api/v1/auth/login", "", gin.H{
        "username": username,
        "password": "password123",
    })
    require.Equal(t, http.StatusOK, code)
    var data struct {
        Token string `json:"token"`
    }
    require.NoError(t, json.Unmarshal(env.Data, &data))
    require.NotEmpty(t, data.Token)
    return data.Token
}

// 载荷里塞 author 也没用，作者永远来自请求身份
func TestPostAuthorDerivedFromIdentity(t *testing.T) {
    r := newTestRouter(t)
    alice := signup(t, r, "alice")
    signup(t, r, "bob")

    code, env := doJSON(t, r, http.MethodPost, "/api/v1/posts", alice, gin.H{
        "text":   "hello",
        "author": "bob",
    })
    require.Equal(t, http.StatusCreated, code)

    var post struct {
        ID      string  `json:"id"`
        Author  string  `json:"author"`
        PubDate string  `json:"pub_date"`
        Group   *string `json:"group"`
    }
    require.NoError(t, json.Unmarshal(env.Data, &post))
    assert.Equal(t, "alice", post.Author)
    assert.NotEmpty(t, post.PubDate)
    assert.Nil(t, post.Group)
}

// 评论的 post 来自路由父级；跨帖子的地址等同不存在
func TestCommentAnchoredToRoutePost(t *testing.T) {
    r := newTestRouter(t)
    alice := signup(t, r, "alice")
    bob := signup(t, r, "bob")

    _, env := doJSON(t, r, http.MethodPost, "/api/v1/posts", alice, gin.H{"text": "post P"})
    var p struct {
        ID string `json:"id"`
    }
    require.NoError(t, json.Unmarshal(env.Data, &p))
    _, env = doJSON(t, r, http.MethodPost, "/api/v1/posts", alice, gin.H{"text": "post Q"})
    var q struct {
        ID string `json:"id"`
    }
    require.NoError(t, json.Unmarshal(env.Data, &q))

    // bob 在 P 下评论，载荷里指向 Q 的 post 字段被无视
    code, env := doJSON(t, r, http.MethodPost, "/api/v1/posts/"+p.ID+"/comments", bob, gin.H{
        "text": "hi",
        "post": q.ID,
    })
    require.Equal(t, http.StatusCreated, code)
    var cm struct {
        ID     string `json:"id"`
        Author string `json:"author"`
        Post   string `json:"post"`
    }
    require.NoError(t, json.Unmarshal(env.Data, &cm))
    assert.Equal(t, p.ID, cm.Post)
    assert.Equal(t, "bob", cm.Author)

    // 经 Q 的路径读 / 改 / 删这条评论一律 404
    code, _ = doJSON(t, r, http.MethodGet, "/api/v1/posts/"+q.ID+"/comments/"+cm.ID, "", nil)
    assert.Equal(t, http.StatusNotFound, code)
    code, _ = doJSON(t, r, http.MethodPut, "/api/v1/posts/"+q.ID+"/comments/"+cm.ID, bob, gin.H{"text": "rewrite"})
    assert.Equal(t, http.StatusNotFound, code)
    code, _ = doJSON(t, r, http.MethodDelete, "/api/v1/posts/"+q.ID+"/comments/"+cm.ID, bob, nil)
    assert.Equal(t, http.StatusNotFound, code)

    // P 的列表里有它，Q 的列表为空
    code, env = doJSON(t, r, http.MethodGet, "/api/v1/posts/"+p.ID+"/comments", "", nil)
    require.Equal(t, http.StatusOK, code)
    var page struct {
        List []json.RawMessage `json:"list"`
    }
    require.NoError(t, json.Unmarshal(env.Data, &page))
    assert.Len(t, page.List, 1)

    _, env = doJSON(t, r, http.MethodGet, "/api/v1/posts/"+q.ID+"/comments", "", nil)
    require.NoError(t, json.Unmarshal(env.Data, &page))
    assert.Empty(t, page.List)
}

func TestFollowLifecycle(t *testing.T) {
    r := newTestRouter(t)
    alice := signup(t, r, "alice")
    bob := signup(t, r, "bob")

    // 自关注：解码期就拒绝
    code, _ := doJSON(t, r, http.MethodPost, "/api/v1/follow", alice, gin.H{"following": "alice"})
    assert.Equal(t, http.StatusBadRequest, code)

    // 不存在的用户
    code, _ = doJSON(t, r, http.MethodPost, "/api/v1/follow", alice, gin.H{"following": "nobody"})
    assert.Equal(t, http.StatusBadRequest, code)

    // 正常关注，user 字段派生自身份
    code, env := doJSON(t, r, http.MethodPost, "/api/v1/follow", alice, gin.H{"following": "bob", "user": "bob"})
    require.Equal(t, http.StatusCreated, code)
    var f struct {
        ID        string `json:"id"`
        User      string `json:"user"`
        Following string `json:"following"`
    }
    require.NoError(t, json.Unmarshal(env.Data, &f))
    assert.Equal(t, "alice", f.User)
    assert.Equal(t, "bob", f.Following)

    // 重复关注
    code, _ = doJSON(t, r, http.MethodPost, "/api/v1/follow", alice, gin.H{"following": "bob"})
    assert.Equal(t, http.StatusBadRequest, code)

    // 列表只含当前身份发出的边
    code, env = doJSON(t, r, http.MethodGet, "/api/v1/follow", bob, nil)
    require.Equal(t, http.StatusOK, code)
    var page struct {
        List []json.RawMessage `json:"list"`
    }
    require.NoError(t, json.Unmarshal(env.Data, &page))
    assert.Empty(t, page.List)

    // 取关只认边的主人
    code, _ = doJSON(t, r, http.MethodDelete, "/api/v1/follow/"+f.ID, bob, nil)
    assert.Equal(t, http.StatusNotFound, code)
    code, _ = doJSON(t, r, http.MethodDelete, "/api/v1/follow/"+f.ID, alice, nil)
    assert.Equal(t, http.StatusOK, code)
}

func TestGroupSlugConflictAndSetNull(t *testing.T) {
    r := newTestRouter(t)
    alice := signup(t, r, "alice")

    code, env := doJSON(t, r, http.MethodPost, "/api/v1/groups", alice, gin.H{
        "title": "Travel", "slug": "travel", "description": "trips",
    })
    require.Equal(t, http.StatusCreated, code)
    var g struct {
        ID string `json:"id"`
    }
    require.NoError(t, json.Unmarshal(env.Data, &g))

    code, _ = doJSON(t, r, http.MethodPost, "/api/v1/groups", alice, gin.H{
        "title": "Travel 2", "slug": "travel", "description": "dup",
    })
    assert.Equal(t, http.StatusConflict, code)

    // 非法 slug 被绑定校验拦下
    code, _ = doJSON(t, r, http.MethodPost, "/api/v1/groups", alice, gin.H{
        "title": "Bad", "slug": "no spaces!", "description": "x",
    })
    assert.Equal(t, http.StatusBadRequest, code)

    // 组删除后帖子保留，group 置空
    _, env = doJSON(t, r, http.MethodPost, "/api/v1/posts", alice, gin.H{"text": "hello", "group": g.ID})
    var p struct {
        ID    string  `json:"id"`
        Group *string `json:"group"`
    }
    require.NoError(t, json.Unmarshal(env.Data, &p))
    require.NotNil(t, p.Group)

    code, _ = doJSON(t, r, http.MethodDelete, "/api/v1/groups/"+g.ID, alice, nil)
    require.Equal(t, http.StatusOK, code)

    code, env = doJSON(t, r, http.MethodGet, "/api/v1/posts/"+p.ID, "", nil)
    require.Equal(t, http.StatusOK, code)
    require.NoError(t, json.Unmarshal(env.Data, &p))
    assert.Nil(t, p.Group)
}

func TestWritesRequireIdentity(t *testing.T) {
    r := newTestRouter(t)

    code, _ := doJSON(t, r, http.MethodPost, "/api/v1/posts", "", gin.H{"text": "hello"})
    assert.Equal(t, http.StatusUnauthorized, code)
    code, _ = doJSON(t, r, http.MethodPost, "/api/v1/follow", "", gin.H{"following": "bob"})
    assert.Equal(t, http.StatusUnauthorized, code)
    code, _ = doJSON(t, r, http.MethodGet, "/api/v1/posts", "", nil)
    assert.Equal(t, http.StatusOK, code)
}
