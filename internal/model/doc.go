package model

// Package model defines the transfer records counted by the drawer badge and
// listed on the downloads page, together with their status enum.
