// Package ui is the Bubble Tea front end of the storefront.
//
// Core pieces:
//   - AppModel: root model; routes keys to the topmost screen and runs the
//     SPC-leader keybinds
//   - View: a screen with its own Init/Update/View (Elm-style)
//   - HomeView, NavMenuView, SearchView, BookingModal, ContentPage,
//     ContactPage: one per screen of viewstate.Screen
//   - FocusManager: tab order across form controls
//   - Animator: spring-driven slide-in played for each view transition
//
// Views never own state. They read snapshots from and write through the
// shared *viewstate.Controller.
package ui
