package web

import "errors"

// ContentTypeHTML is the Content-Type written for rendered views.
const ContentTypeHTML = "text/html; charset=utf-8"

// ErrTemplateNotFound indicates a view that was not parsed into the set.
var ErrTemplateNotFound = errors.New("template not found")
